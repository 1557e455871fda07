package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvestmentPurchase struct {
	ID             int64
	ClientID       int64
	Email          string
	AssetName      string
	AssetType      string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	InvestedAmount decimal.Decimal
	CurrentValue   decimal.Decimal
	Yield          decimal.Decimal
	CreatedAt      time.Time
}

// InvestmentPosition is the per-client aggregate, maintained incrementally:
// the total equals the sum of the constituent purchases' current value.
type InvestmentPosition struct {
	ClientID      int64
	TotalInvested decimal.Decimal
	UpdatedAt     time.Time
}
