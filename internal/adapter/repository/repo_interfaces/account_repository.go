package repo_interfaces

import (
	"context"

	"github.com/arthurssantosibm/api-client/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByID(ctx context.Context, id int64) (domain.Account, error)
	GetByEmail(ctx context.Context, email string) (domain.Account, error)
	Update(ctx context.Context, id int64, patch domain.AccountPatch) error
	Suspend(ctx context.Context, id int64) error
	ReactivateByEmail(ctx context.Context, email string) error
}
