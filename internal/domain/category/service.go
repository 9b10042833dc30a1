package category

import (
	"context"
	"errors"
	"time"

	"Vaquinha/internal/domain/shared"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, category *Category) error {
	category.Name = shared.NormalizeName(category.Name)
	if category.Name == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}

	if err := s.checkNameNotExists(ctx, category.Name); err != nil {
		return err
	}

	s.initCategory(category)

	if err := s.Repository.Create(ctx, category); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return appErrors.NewConflictError("categoria")
		}
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) Update(ctx context.Context, category *Category) error {
	existing, err := s.Repository.GetByID(ctx, category.Id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.ErrCategoryNotFound
	}
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	category.Name = shared.NormalizeName(category.Name)
	if category.Name == "" {
		return appErrors.NewValidationError("name", "é obrigatório")
	}

	if existing.Name != category.Name {
		if err := s.checkNameNotExists(ctx, category.Name); err != nil {
			return err
		}
	}

	existing.Name = category.Name
	existing.Description = category.Description
	existing.Icon = category.Icon
	existing.UpdatedAt = time.Now()

	return s.Repository.Update(ctx, existing)
}

// Delete remove a categoria. As campanhas vinculadas não são excluídas,
// apenas ficam sem categoria.
func (s *Service) Delete(ctx context.Context, categoryID ulid.ULID) error {
	if _, err := s.Repository.GetByID(ctx, categoryID); errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.ErrCategoryNotFound
	} else if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Repository.DetachCampaigns(ctx, categoryID); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return s.Repository.Delete(ctx, categoryID)
}

func (s *Service) GetByID(ctx context.Context, categoryID ulid.ULID) (*Category, error) {
	category, err := s.Repository.GetByID(ctx, categoryID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return category, nil
}

func (s *Service) GetAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*Category, int64, error) {
	categories, total, err := s.Repository.GetAll(ctx, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return categories, total, nil
}

// EnsureExists valida que a categoria informada em uma campanha existe.
func (s *Service) EnsureExists(ctx context.Context, categoryID ulid.ULID) error {
	_, err := s.GetByID(ctx, categoryID)
	return err
}

func (s *Service) checkNameNotExists(ctx context.Context, name string) error {
	_, err := s.Repository.GetByName(ctx, name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return appErrors.NewConflictError("categoria")
}

func (s *Service) initCategory(category *Category) {
	category.Id = pkg.GenerateULIDObject()
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()
}
