package category_test

import (
	"context"
	"testing"

	"Vaquinha/internal/domain/category"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type fakeCategoryRepository struct {
	createFn          func(ctx context.Context, c *category.Category) error
	updateFn          func(ctx context.Context, c *category.Category) error
	deleteFn          func(ctx context.Context, id ulid.ULID) error
	getByIDFn         func(ctx context.Context, id ulid.ULID) (*category.Category, error)
	getByNameFn       func(ctx context.Context, name string) (*category.Category, error)
	detachCampaignsFn func(ctx context.Context, id ulid.ULID) error
	calls             []string
}

func (f *fakeCategoryRepository) Create(ctx context.Context, c *category.Category) error {
	f.calls = append(f.calls, "Create")
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	f.calls = append(f.calls, "Update")
	if f.updateFn != nil {
		return f.updateFn(ctx, c)
	}
	return nil
}

func (f *fakeCategoryRepository) Delete(ctx context.Context, id ulid.ULID) error {
	f.calls = append(f.calls, "Delete")
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeCategoryRepository) GetByID(ctx context.Context, id ulid.ULID) (*category.Category, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepository) GetAll(ctx context.Context, _ *pkg.PaginationParams) ([]*category.Category, int64, error) {
	return nil, 0, nil
}

func (f *fakeCategoryRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	if f.getByNameFn != nil {
		return f.getByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCategoryRepository) DetachCampaigns(ctx context.Context, id ulid.ULID) error {
	f.calls = append(f.calls, "DetachCampaigns")
	if f.detachCampaignsFn != nil {
		return f.detachCampaignsFn(ctx, id)
	}
	return nil
}

func TestCreateCategoryNormalizesName(t *testing.T) {
	t.Parallel()

	var created *category.Category
	repo := &fakeCategoryRepository{
		createFn: func(ctx context.Context, c *category.Category) error {
			created = c
			return nil
		},
	}

	svc := category.NewService(repo)
	err := svc.Create(context.Background(), &category.Category{Name: "  saúde e   bem estar  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.Name != "Saúde E Bem Estar" {
		t.Fatalf("unexpected normalized name: %q", created.Name)
	}
	if pkg.IsEmptyULID(created.Id) {
		t.Fatal("expected generated id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}

func TestCreateCategoryEmptyName(t *testing.T) {
	t.Parallel()

	svc := category.NewService(&fakeCategoryRepository{})
	err := svc.Create(context.Background(), &category.Category{Name: "   "})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	t.Parallel()

	repo := &fakeCategoryRepository{
		getByNameFn: func(ctx context.Context, name string) (*category.Category, error) {
			return &category.Category{Id: ulid.Make(), Name: name}, nil
		},
	}

	svc := category.NewService(repo)
	err := svc.Create(context.Background(), &category.Category{Name: "Animais"})
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != "CONFLICT" {
		t.Fatalf("expected CONFLICT, got %s", appErr.Code)
	}
}

func TestUpdateCategorySkipsNameCheckWhenUnchanged(t *testing.T) {
	t.Parallel()

	categoryID := ulid.Make()
	nameChecked := false
	repo := &fakeCategoryRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*category.Category, error) {
			return &category.Category{Id: categoryID, Name: "Animais"}, nil
		},
		getByNameFn: func(ctx context.Context, name string) (*category.Category, error) {
			nameChecked = true
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := category.NewService(repo)
	err := svc.Update(context.Background(), &category.Category{
		Id:          categoryID,
		Name:        "animais",
		Description: "Campanhas para animais resgatados",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if nameChecked {
		t.Fatal("name check should be skipped when the name did not change")
	}
}

func TestUpdateCategoryNotFound(t *testing.T) {
	t.Parallel()

	svc := category.NewService(&fakeCategoryRepository{})
	err := svc.Update(context.Background(), &category.Category{Id: ulid.Make(), Name: "Animais"})
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != appErrors.ErrCategoryNotFound.Code {
		t.Fatalf("expected %s, got %s", appErrors.ErrCategoryNotFound.Code, appErr.Code)
	}
}

func TestDeleteCategoryDetachesCampaignsFirst(t *testing.T) {
	t.Parallel()

	categoryID := ulid.Make()
	repo := &fakeCategoryRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*category.Category, error) {
			return &category.Category{Id: categoryID, Name: "Animais"}, nil
		},
	}

	svc := category.NewService(repo)
	if err := svc.Delete(context.Background(), categoryID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.calls) != 2 || repo.calls[0] != "DetachCampaigns" || repo.calls[1] != "Delete" {
		t.Fatalf("expected DetachCampaigns before Delete, got %v", repo.calls)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	t.Parallel()

	svc := category.NewService(&fakeCategoryRepository{})
	err := svc.Delete(context.Background(), ulid.Make())
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != appErrors.ErrCategoryNotFound.Code {
		t.Fatalf("expected %s, got %s", appErrors.ErrCategoryNotFound.Code, appErr.Code)
	}
}
