package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MovementKind string

const (
	MovementTransfer   MovementKind = "TRANSFER"
	MovementDeposit    MovementKind = "DEPOSIT"
	MovementWithdrawal MovementKind = "WITHDRAWAL"
)

// Movement is a single append-only ledger entry. Account is the email the
// movement is recorded against; Counterparty is set only for transfers.
type Movement struct {
	ID           int64
	Kind         MovementKind
	Account      string
	Counterparty *string
	Amount       decimal.Decimal
	Memo         string
	CreatedAt    time.Time
}
