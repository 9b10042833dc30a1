package category

import (
	"context"

	"Vaquinha/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID ulid.ULID) error
	GetByID(ctx context.Context, categoryID ulid.ULID) (*Category, error)
	GetAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*Category, int64, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	// DetachCampaigns zera o category_id das campanhas vinculadas antes
	// da exclusão da categoria.
	DetachCampaigns(ctx context.Context, categoryID ulid.ULID) error
}
