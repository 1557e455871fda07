package repo_interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// MovementRepository executes each balance movement and its ledger entry as
// one atomic store transaction.
type MovementRepository interface {
	// Transfer records the movement, debits the origin by id and credits
	// the destination by email.
	Transfer(ctx context.Context, originID int64, originEmail, destinationEmail string, amount decimal.Decimal, memo string) error

	// Deposit credits the account and returns the resulting balance read
	// within the same transaction.
	Deposit(ctx context.Context, email string, amount decimal.Decimal) (decimal.Decimal, error)

	// Withdraw debits the account after a row-locked sufficiency check and
	// returns the resulting balance read within the same transaction.
	Withdraw(ctx context.Context, email string, amount decimal.Decimal) (decimal.Decimal, error)
}
