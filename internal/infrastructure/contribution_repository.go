package infrastructure

import (
	"context"
	"time"

	"Vaquinha/internal/domain/contribution"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type ContributionRepository struct {
	DB *gorm.DB
}

type contributionDB struct {
	Id         string  `gorm:"type:varchar(26);primaryKey"`
	CampaignId string  `gorm:"type:varchar(26);index;not null"`
	UserId     string  `gorm:"type:varchar(26);index;not null"`
	Amount     float64 `gorm:"not null"`
	Message    string
	Anonymous  bool
	CreatedAt  time.Time
}

func toDomainContribution(cdb *contributionDB) (*contribution.Contribution, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	campaignID, err := pkg.ParseULID(cdb.CampaignId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	userID, err := pkg.ParseULID(cdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &contribution.Contribution{
		Id:         id,
		CampaignId: campaignID,
		UserId:     userID,
		Amount:     cdb.Amount,
		Message:    cdb.Message,
		Anonymous:  cdb.Anonymous,
		CreatedAt:  cdb.CreatedAt,
	}, nil
}

func toDBContribution(c *contribution.Contribution) *contributionDB {
	return &contributionDB{
		Id:         c.Id.String(),
		CampaignId: c.CampaignId.String(),
		UserId:     c.UserId.String(),
		Amount:     c.Amount,
		Message:    c.Message,
		Anonymous:  c.Anonymous,
		CreatedAt:  c.CreatedAt,
	}
}

func (r *ContributionRepository) Create(ctx context.Context, c *contribution.Contribution) error {
	cdb := toDBContribution(c)
	if err := r.DB.WithContext(ctx).Table("contributions").Create(&cdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ContributionRepository) Delete(ctx context.Context, contributionID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("contributions").Where("id = ?", contributionID.String()).Delete(&contributionDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrContributionNotFound
	}
	return nil
}

func (r *ContributionRepository) GetByID(ctx context.Context, contributionID ulid.ULID) (*contribution.Contribution, error) {
	var cdb contributionDB
	if err := r.DB.WithContext(ctx).Table("contributions").Where("id = ?", contributionID.String()).First(&cdb).Error; err != nil {
		return nil, err
	}
	return toDomainContribution(&cdb)
}

func (r *ContributionRepository) GetByCampaignID(ctx context.Context, campaignID ulid.ULID, pagination *pkg.PaginationParams) ([]*contribution.Contribution, int64, error) {
	return r.list(ctx, "campaign_id = ?", campaignID.String(), pagination)
}

func (r *ContributionRepository) GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*contribution.Contribution, int64, error) {
	return r.list(ctx, "user_id = ?", userID.String(), pagination)
}

func (r *ContributionRepository) list(ctx context.Context, condition, value string, pagination *pkg.PaginationParams) ([]*contribution.Contribution, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("contributions").Where(condition, value)
	return pkg.Paginate(baseQuery, pagination, "created_at DESC", toDomainContribution)
}
