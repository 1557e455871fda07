package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/arthurssantosibm/api-client/internal/domain"
	"github.com/arthurssantosibm/api-client/internal/logger"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	const query = `
INSERT INTO usuarios (nome, email, telefone, senha)
VALUES ($1, $2, $3, $4)
RETURNING id, saldo_cc, correntista, created_at, updated_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		account.Name,
		account.Email,
		account.Phone,
		account.Secret,
	).Scan(&account.ID, &account.Balance, &account.Status, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Account{}, domain.ErrEmailTaken
		}
		logger.Error("account repository create failed", err, logger.Fields{
			"email": account.Email,
		})
		return domain.Account{}, &domain.DatabaseError{Err: fmt.Errorf("create account: %w", err)}
	}

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (domain.Account, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	return r.get(ctx, `WHERE email = $1`, email)
}

func (r *AccountRepository) get(ctx context.Context, where string, arg any) (domain.Account, error) {
	query := `
SELECT id, nome, email, telefone, senha, saldo_cc, correntista, created_at, updated_at
FROM usuarios ` + where

	var account domain.Account
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Phone,
		&account.Secret,
		&account.Balance,
		&account.Status,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrRecordNotFound
		}
		logger.Error("account repository get failed", err, nil)
		return domain.Account{}, &domain.DatabaseError{Err: fmt.Errorf("get account: %w", err)}
	}

	return account, nil
}

// Update applies only the provided patch fields. Column names come from a
// fixed allow-list; caller input is bound as parameters only.
func (r *AccountRepository) Update(ctx context.Context, id int64, patch domain.AccountPatch) error {
	if patch.Empty() {
		return domain.ErrNoFieldsProvided
	}

	assignments := make([]string, 0, 4)
	args := make([]any, 0, 5)
	args = append(args, id)

	appendField := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	appendField("nome", patch.Name)
	appendField("email", patch.Email)
	appendField("telefone", patch.Phone)
	appendField("senha", patch.Secret)

	query := fmt.Sprintf(
		`UPDATE usuarios SET %s, updated_at = NOW() WHERE id = $1`,
		strings.Join(assignments, ", "),
	)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		logger.Error("account repository update failed", err, logger.Fields{
			"accountId": id,
		})
		return &domain.DatabaseError{Err: fmt.Errorf("update account: %w", err)}
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return &domain.DatabaseError{Err: fmt.Errorf("update account rows affected: %w", err)}
	}
	if rows == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// Suspend does not inspect the affected-row count: suspending an id that
// does not exist reports success, matching the original service.
func (r *AccountRepository) Suspend(ctx context.Context, id int64) error {
	const query = `UPDATE usuarios SET correntista = 0, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		logger.Error("account repository suspend failed", err, logger.Fields{
			"accountId": id,
		})
		return &domain.DatabaseError{Err: fmt.Errorf("suspend account: %w", err)}
	}

	return nil
}

func (r *AccountRepository) ReactivateByEmail(ctx context.Context, email string) error {
	const query = `UPDATE usuarios SET correntista = 1, updated_at = NOW() WHERE LOWER(email) = LOWER($1)`

	result, err := r.db.ExecContext(ctx, query, strings.TrimSpace(email))
	if err != nil {
		logger.Error("account repository reactivate failed", err, logger.Fields{
			"email": email,
		})
		return &domain.DatabaseError{Err: fmt.Errorf("reactivate account: %w", err)}
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return &domain.DatabaseError{Err: fmt.Errorf("reactivate account rows affected: %w", err)}
	}
	if rows == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}
