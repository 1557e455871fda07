package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arthurssantosibm/api-client/internal/domain"
	"github.com/arthurssantosibm/api-client/internal/logger"
)

type InvestmentRepository struct {
	db *sql.DB
}

func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// RecordPurchase inserts the purchase row and increments the client's
// aggregate position by the purchase's current value in one transaction.
func (r *InvestmentRepository) RecordPurchase(ctx context.Context, purchase domain.InvestmentPurchase) (domain.InvestmentPurchase, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("investment repository begin tx failed", err, nil)
		return domain.InvestmentPurchase{}, &domain.DatabaseError{Err: fmt.Errorf("begin investment transaction: %w", err)}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertQuery = `
INSERT INTO investimentos (
	client_id,
	email,
	nome_ativo,
	tipo,
	quantidade,
	preco_unitario,
	valor_investido,
	valor_atual,
	rendimento
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, created_at`

	err = tx.QueryRowContext(
		ctx,
		insertQuery,
		purchase.ClientID,
		purchase.Email,
		purchase.AssetName,
		purchase.AssetType,
		purchase.Quantity,
		purchase.UnitPrice,
		purchase.InvestedAmount,
		purchase.CurrentValue,
		purchase.Yield,
	).Scan(&purchase.ID, &purchase.CreatedAt)
	if err != nil {
		err = &domain.DatabaseError{Err: fmt.Errorf("insert investment purchase: %w", err)}
		return domain.InvestmentPurchase{}, err
	}

	const upsertQuery = `
INSERT INTO posicoes_investimento (client_id, total_investido)
VALUES ($1, $2)
ON CONFLICT (client_id)
DO UPDATE SET total_investido = posicoes_investimento.total_investido + EXCLUDED.total_investido,
              updated_at = NOW()`

	if _, err = tx.ExecContext(ctx, upsertQuery, purchase.ClientID, purchase.CurrentValue); err != nil {
		err = &domain.DatabaseError{Err: fmt.Errorf("update investment position: %w", err)}
		return domain.InvestmentPurchase{}, err
	}

	if err = tx.Commit(); err != nil {
		err = &domain.DatabaseError{Err: fmt.Errorf("commit investment transaction: %w", err)}
		return domain.InvestmentPurchase{}, err
	}

	return purchase, nil
}
