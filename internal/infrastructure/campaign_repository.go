package infrastructure

import (
	"context"
	"time"

	"Vaquinha/internal/domain/campaign"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type CampaignRepository struct {
	DB *gorm.DB
}

type campaignDB struct {
	Id            string  `gorm:"type:varchar(26);primaryKey"`
	UserId        string  `gorm:"type:varchar(26);index;not null"`
	CategoryId    *string `gorm:"type:varchar(26);index"`
	Title         string  `gorm:"not null"`
	Slug          string  `gorm:"not null"`
	Description   string  `gorm:"not null"`
	ImageURL      string
	GoalAmount    float64 `gorm:"not null"`
	CurrentAmount float64 `gorm:"not null"`
	StartDate     time.Time
	EndDate       time.Time
	Status        campaign.CampaignStatus `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toDomainCampaign(cdb *campaignDB) (*campaign.Campaign, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	uid, err := pkg.ParseULID(cdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	var categoryID *ulid.ULID
	if cdb.CategoryId != nil && *cdb.CategoryId != "" {
		parsed, err := pkg.ParseULID(*cdb.CategoryId)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		categoryID = &parsed
	}

	return &campaign.Campaign{
		Id:            id,
		UserId:        uid,
		CategoryId:    categoryID,
		Title:         cdb.Title,
		Slug:          cdb.Slug,
		Description:   cdb.Description,
		ImageURL:      cdb.ImageURL,
		GoalAmount:    cdb.GoalAmount,
		CurrentAmount: cdb.CurrentAmount,
		StartDate:     cdb.StartDate,
		EndDate:       cdb.EndDate,
		Status:        cdb.Status,
		CreatedAt:     cdb.CreatedAt,
		UpdatedAt:     cdb.UpdatedAt,
	}, nil
}

func toDBCampaign(c *campaign.Campaign) *campaignDB {
	var categoryID *string
	if c.CategoryId != nil {
		s := c.CategoryId.String()
		categoryID = &s
	}

	return &campaignDB{
		Id:            c.Id.String(),
		UserId:        c.UserId.String(),
		CategoryId:    categoryID,
		Title:         c.Title,
		Slug:          c.Slug,
		Description:   c.Description,
		ImageURL:      c.ImageURL,
		GoalAmount:    c.GoalAmount,
		CurrentAmount: c.CurrentAmount,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		Status:        c.Status,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (r *CampaignRepository) Create(ctx context.Context, c *campaign.Campaign) error {
	cdb := toDBCampaign(c)
	return r.DB.WithContext(ctx).Table("campaigns").Create(&cdb).Error
}

// Update escreve via mapa para que campos limpos (category_id nulo) também
// cheguem ao banco. current_amount fica de fora: só o incremento atômico mexe nele.
func (r *CampaignRepository) Update(ctx context.Context, c *campaign.Campaign) error {
	cdb := toDBCampaign(c)
	return r.DB.WithContext(ctx).Table("campaigns").Where("id = ?", cdb.Id).Updates(map[string]interface{}{
		"category_id": cdb.CategoryId,
		"title":       cdb.Title,
		"slug":        cdb.Slug,
		"description": cdb.Description,
		"image_url":   cdb.ImageURL,
		"goal_amount": cdb.GoalAmount,
		"start_date":  cdb.StartDate,
		"end_date":    cdb.EndDate,
		"status":      cdb.Status,
		"updated_at":  cdb.UpdatedAt,
	}).Error
}

func (r *CampaignRepository) UpdateFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
	if err := r.DB.WithContext(ctx).Table("campaigns").Where("id = ?", id.String()).Updates(fields).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("campaigns").Where("id = ?", id.String()).Delete(&campaignDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrCampaignNotFound
	}
	return nil
}

func (r *CampaignRepository) GetByID(ctx context.Context, id ulid.ULID) (*campaign.Campaign, error) {
	var cdb campaignDB
	if err := r.DB.WithContext(ctx).Table("campaigns").Where("id = ?", id.String()).First(&cdb).Error; err != nil {
		return nil, err
	}
	return toDomainCampaign(&cdb)
}

func (r *CampaignRepository) GetByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*campaign.Campaign, error) {
	var cdb campaignDB
	if err := r.DB.WithContext(ctx).Table("campaigns").
		Where("id = ? AND user_id = ?", id.String(), userID.String()).
		First(&cdb).Error; err != nil {
		return nil, err
	}
	return toDomainCampaign(&cdb)
}

func (r *CampaignRepository) GetBySlug(ctx context.Context, slug string) (*campaign.Campaign, error) {
	var cdb campaignDB
	if err := r.DB.WithContext(ctx).Table("campaigns").Where("slug = ?", slug).First(&cdb).Error; err != nil {
		return nil, err
	}
	return toDomainCampaign(&cdb)
}

func (r *CampaignRepository) List(ctx context.Context, filters *campaign.Filters, pagination *pkg.PaginationParams) ([]*campaign.Campaign, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("campaigns")

	if filters != nil {
		if filters.Search != "" {
			baseQuery = baseQuery.Where("title ILIKE ?", "%"+filters.Search+"%")
		}
		if filters.CategoryId != nil {
			baseQuery = baseQuery.Where("category_id = ?", filters.CategoryId.String())
		}
		if filters.Status != nil {
			baseQuery = baseQuery.Where("status = ?", string(*filters.Status))
		}
	}

	return pkg.Paginate(baseQuery, pagination, "created_at DESC", toDomainCampaign)
}

func (r *CampaignRepository) GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*campaign.Campaign, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("campaigns").Where("user_id = ?", userID.String())
	return pkg.Paginate(baseQuery, pagination, "created_at DESC", toDomainCampaign)
}

func (r *CampaignRepository) CheckCampaignBelongsToUser(ctx context.Context, campaignID, userID ulid.ULID) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Table("campaigns").
		Where("id = ? AND user_id = ?", campaignID.String(), userID.String()).
		Count(&count).Error; err != nil {
		return false, appErrors.NewDatabaseError(err)
	}
	return count > 0, nil
}

func (r *CampaignRepository) CountContributions(ctx context.Context, campaignID ulid.ULID) (int64, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Table("contributions").
		Where("campaign_id = ?", campaignID.String()).
		Count(&count).Error; err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

// UpdateCurrentAmountAtomic soma o delta direto no banco para que
// contribuições simultâneas não percam valores.
func (r *CampaignRepository) UpdateCurrentAmountAtomic(ctx context.Context, campaignID ulid.ULID, delta float64) error {
	result := r.DB.WithContext(ctx).Table("campaigns").Where("id = ?", campaignID.String()).
		UpdateColumn("current_amount", gorm.Expr("current_amount + ?", delta)).
		UpdateColumn("updated_at", time.Now())
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrCampaignNotFound
	}
	return nil
}
