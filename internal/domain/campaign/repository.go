package campaign

import (
	"context"

	"Vaquinha/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// Filters restringe a listagem de campanhas. Todos os critérios
// informados são combinados.
type Filters struct {
	Search     string
	CategoryId *ulid.ULID
	Status     *CampaignStatus
}

type Repository interface {
	Create(ctx context.Context, campaign *Campaign) error
	Update(ctx context.Context, campaign *Campaign) error
	UpdateFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Campaign, error)
	GetByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*Campaign, error)
	GetBySlug(ctx context.Context, slug string) (*Campaign, error)
	List(ctx context.Context, filters *Filters, pagination *pkg.PaginationParams) ([]*Campaign, int64, error)
	GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Campaign, int64, error)
	CheckCampaignBelongsToUser(ctx context.Context, campaignID, userID ulid.ULID) (bool, error)
	UpdateCurrentAmountAtomic(ctx context.Context, campaignID ulid.ULID, delta float64) error
	CountContributions(ctx context.Context, campaignID ulid.ULID) (int64, error)
}

// ImageStorage guarda as imagens de capa em um bucket S3-compatível.
type ImageStorage interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
}
