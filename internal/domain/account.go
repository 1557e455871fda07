package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountStatus int

const (
	AccountStatusSuspended AccountStatus = 0
	AccountStatusActive    AccountStatus = 1
)

type Account struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Secret    string
	Balance   decimal.Decimal
	Status    AccountStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccountPatch carries the optional fields of a partial profile update.
// A nil field is left untouched by the store.
type AccountPatch struct {
	Name   *string
	Email  *string
	Phone  *string
	Secret *string
}

func (p AccountPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.Phone == nil && p.Secret == nil
}
