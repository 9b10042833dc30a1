package contribution

import (
	"context"

	"Vaquinha/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, contribution *Contribution) error
	Delete(ctx context.Context, contributionID ulid.ULID) error
	GetByID(ctx context.Context, contributionID ulid.ULID) (*Contribution, error)
	GetByCampaignID(ctx context.Context, campaignID ulid.ULID, pagination *pkg.PaginationParams) ([]*Contribution, int64, error)
	GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Contribution, int64, error)
}
