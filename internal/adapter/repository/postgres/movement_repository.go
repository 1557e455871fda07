package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/arthurssantosibm/api-client/internal/domain"
	"github.com/arthurssantosibm/api-client/internal/logger"
)

// Ledger row encoding kept from the original schema: deposits carry a
// sentinel origin and withdrawals a sentinel destination. The sentinels
// never leave this package; everything above works with domain.Movement.
const (
	depositOriginSentinel         = "DEPOSITO"
	withdrawalDestinationSentinel = "SAQUE"

	depositMemo    = "Depósito em conta"
	withdrawalMemo = "Saque efetuado"
)

type MovementRepository struct {
	db *sql.DB
}

func NewMovementRepository(db *sql.DB) *MovementRepository {
	return &MovementRepository{db: db}
}

// Transfer records the ledger entry, debits the origin account by id and
// credits the destination by email, all in one transaction. The credit is
// deliberately not row-checked: a transfer to an unknown destination email
// commits with the origin debited, matching the original service.
func (r *MovementRepository) Transfer(ctx context.Context, originID int64, originEmail, destinationEmail string, amount decimal.Decimal, memo string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("movement repository begin transfer tx failed", err, nil)
		return &domain.DatabaseError{Err: fmt.Errorf("begin transfer transaction: %w", err)}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	movement := domain.Movement{
		Kind:         domain.MovementTransfer,
		Account:      originEmail,
		Counterparty: &destinationEmail,
		Amount:       amount,
		Memo:         memo,
	}
	if err = insertMovement(ctx, tx, movement); err != nil {
		return err
	}

	const debitQuery = `UPDATE usuarios SET saldo_cc = saldo_cc - $1, updated_at = NOW() WHERE id = $2`
	if _, err = tx.ExecContext(ctx, debitQuery, amount, originID); err != nil {
		err = &domain.DatabaseError{Err: fmt.Errorf("debit origin account: %w", err)}
		return err
	}

	const creditQuery = `UPDATE usuarios SET saldo_cc = saldo_cc + $1, updated_at = NOW() WHERE email = $2`
	if _, err = tx.ExecContext(ctx, creditQuery, amount, destinationEmail); err != nil {
		err = &domain.DatabaseError{Err: fmt.Errorf("credit destination account: %w", err)}
		return err
	}

	if err = tx.Commit(); err != nil {
		err = &domain.DatabaseError{Err: fmt.Errorf("commit transfer transaction: %w", err)}
		return err
	}

	return nil
}

func (r *MovementRepository) Deposit(ctx context.Context, email string, amount decimal.Decimal) (decimal.Decimal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("movement repository begin deposit tx failed", err, nil)
		return decimal.Zero, &domain.DatabaseError{Err: fmt.Errorf("begin deposit transaction: %w", err)}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var id int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM usuarios WHERE email = $1`, email).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrRecordNotFound
			return decimal.Zero, err
		}
		err = &domain.DatabaseError{Err: fmt.Errorf("lookup deposit account: %w", err)}
		return decimal.Zero, err
	}

	const creditQuery = `UPDATE usuarios SET saldo_cc = saldo_cc + $1, updated_at = NOW() WHERE email = $2`
	if _, err = tx.ExecContext(ctx, creditQuery, amount, email); err != nil {
		err = &domain.DatabaseError{Err: fmt.Errorf("credit deposit: %w", err)}
		return decimal.Zero, err
	}

	movement := domain.Movement{
		Kind:    domain.MovementDeposit,
		Account: email,
		Amount:  amount,
		Memo:    depositMemo,
	}
	if err = insertMovement(ctx, tx, movement); err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	if err = tx.QueryRowContext(ctx, `SELECT saldo_cc FROM usuarios WHERE email = $1`, email).Scan(&balance); err != nil {
		err = &domain.DatabaseError{Err: fmt.Errorf("read balance after deposit: %w", err)}
		return decimal.Zero, err
	}

	if err = tx.Commit(); err != nil {
		err = &domain.DatabaseError{Err: fmt.Errorf("commit deposit transaction: %w", err)}
		return decimal.Zero, err
	}

	return balance, nil
}

func (r *MovementRepository) Withdraw(ctx context.Context, email string, amount decimal.Decimal) (decimal.Decimal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("movement repository begin withdrawal tx failed", err, nil)
		return decimal.Zero, &domain.DatabaseError{Err: fmt.Errorf("begin withdrawal transaction: %w", err)}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// The row lock holds until commit, so two concurrent withdrawals cannot
	// both pass the sufficiency check against the same balance.
	var balance decimal.Decimal
	err = tx.QueryRowContext(ctx, `SELECT saldo_cc FROM usuarios WHERE email = $1 FOR UPDATE`, email).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = domain.ErrRecordNotFound
			return decimal.Zero, err
		}
		err = &domain.DatabaseError{Err: fmt.Errorf("lookup withdrawal account: %w", err)}
		return decimal.Zero, err
	}

	if amount.GreaterThan(balance) {
		err = domain.ErrInsufficientFunds
		return decimal.Zero, err
	}

	const debitQuery = `UPDATE usuarios SET saldo_cc = saldo_cc - $1, updated_at = NOW() WHERE email = $2`
	if _, err = tx.ExecContext(ctx, debitQuery, amount, email); err != nil {
		err = &domain.DatabaseError{Err: fmt.Errorf("debit withdrawal: %w", err)}
		return decimal.Zero, err
	}

	movement := domain.Movement{
		Kind:    domain.MovementWithdrawal,
		Account: email,
		Amount:  amount,
		Memo:    withdrawalMemo,
	}
	if err = insertMovement(ctx, tx, movement); err != nil {
		return decimal.Zero, err
	}

	if err = tx.QueryRowContext(ctx, `SELECT saldo_cc FROM usuarios WHERE email = $1`, email).Scan(&balance); err != nil {
		err = &domain.DatabaseError{Err: fmt.Errorf("read balance after withdrawal: %w", err)}
		return decimal.Zero, err
	}

	if err = tx.Commit(); err != nil {
		err = &domain.DatabaseError{Err: fmt.Errorf("commit withdrawal transaction: %w", err)}
		return decimal.Zero, err
	}

	return balance, nil
}

func insertMovement(ctx context.Context, tx *sql.Tx, movement domain.Movement) error {
	origin, destination := encodeMovementEndpoints(movement)

	const query = `
INSERT INTO transacoes (email_origin, email_destination, valor, mensagem, create_time)
VALUES ($1, $2, $3, $4, NOW())`

	if _, err := tx.ExecContext(ctx, query, origin, destination, movement.Amount, movement.Memo); err != nil {
		return &domain.DatabaseError{Err: fmt.Errorf("insert movement: %w", err)}
	}

	return nil
}

func encodeMovementEndpoints(movement domain.Movement) (origin, destination string) {
	switch movement.Kind {
	case domain.MovementDeposit:
		return depositOriginSentinel, movement.Account
	case domain.MovementWithdrawal:
		return movement.Account, withdrawalDestinationSentinel
	default:
		counterparty := ""
		if movement.Counterparty != nil {
			counterparty = *movement.Counterparty
		}
		return movement.Account, counterparty
	}
}
