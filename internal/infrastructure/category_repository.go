package infrastructure

import (
	"context"
	"time"

	"Vaquinha/internal/domain/category"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

type categoryDB struct {
	Id          string `gorm:"type:varchar(26);primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	Icon        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toDomainCategory(cdb *categoryDB) (*category.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &category.Category{
		Id:          id,
		Name:        cdb.Name,
		Description: cdb.Description,
		Icon:        cdb.Icon,
		CreatedAt:   cdb.CreatedAt,
		UpdatedAt:   cdb.UpdatedAt,
	}, nil
}

type categoryListDB struct {
	categoryDB
	CampaignsCount int64
}

func toDomainCategoryWithCount(row *categoryListDB) (*category.Category, error) {
	c, err := toDomainCategory(&row.categoryDB)
	if err != nil {
		return nil, err
	}
	c.CampaignsCount = row.CampaignsCount
	return c, nil
}

func toDBCategory(c *category.Category) *categoryDB {
	return &categoryDB{
		Id:          c.Id.String(),
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	cdb := toDBCategory(c)
	return r.DB.WithContext(ctx).Table("categories").Create(&cdb).Error
}

// Update escreve via mapa para que descrição e ícone possam ser limpos.
func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	cdb := toDBCategory(c)
	return r.DB.WithContext(ctx).Table("categories").Where("id = ?", cdb.Id).Updates(map[string]interface{}{
		"name":        cdb.Name,
		"description": cdb.Description,
		"icon":        cdb.Icon,
		"updated_at":  cdb.UpdatedAt,
	}).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("categories").Where("id = ?", categoryID.String()).Delete(&categoryDB{})
	if result.Error != nil {
		return appErrors.NewDatabaseError(result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID ulid.ULID) (*category.Category, error) {
	var cdb categoryDB
	if err := r.DB.WithContext(ctx).Table("categories").Where("id = ?", categoryID.String()).First(&cdb).Error; err != nil {
		return nil, err
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) GetAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*category.Category, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("categories").
		Select("categories.*, (SELECT COUNT(*) FROM campaigns WHERE campaigns.category_id = categories.id) AS campaigns_count")
	return pkg.Paginate(baseQuery, pagination, "name ASC", toDomainCategoryWithCount)
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	var cdb categoryDB
	if err := r.DB.WithContext(ctx).Table("categories").Where("name = ?", name).First(&cdb).Error; err != nil {
		return nil, err
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) DetachCampaigns(ctx context.Context, categoryID ulid.ULID) error {
	return r.DB.WithContext(ctx).Table("campaigns").
		Where("category_id = ?", categoryID.String()).
		Update("category_id", gorm.Expr("NULL")).Error
}
