package repo_interfaces

import (
	"context"

	"github.com/arthurssantosibm/api-client/internal/domain"
)

type InvestmentRepository interface {
	// RecordPurchase inserts the purchase row and increments the client's
	// aggregate position by the purchase's current value in one transaction.
	RecordPurchase(ctx context.Context, purchase domain.InvestmentPurchase) (domain.InvestmentPurchase, error)
}
