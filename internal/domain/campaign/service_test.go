package campaign_test

import (
	"context"
	"testing"
	"time"

	"Vaquinha/internal/domain/campaign"
	"Vaquinha/internal/domain/category"
	domaincontracts "Vaquinha/internal/domain/contracts"
	"Vaquinha/internal/domain/user"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type fakeCampaignRepository struct {
	createFn             func(ctx context.Context, c *campaign.Campaign) error
	updateFn             func(ctx context.Context, c *campaign.Campaign) error
	updateFieldsFn       func(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error
	deleteFn             func(ctx context.Context, id ulid.ULID) error
	getByIDFn            func(ctx context.Context, id ulid.ULID) (*campaign.Campaign, error)
	getBySlugFn          func(ctx context.Context, slug string) (*campaign.Campaign, error)
	listFn               func(ctx context.Context, filters *campaign.Filters, pagination *pkg.PaginationParams) ([]*campaign.Campaign, int64, error)
	belongsFn            func(ctx context.Context, campaignID, userID ulid.ULID) (bool, error)
	updateAmountAtomicFn func(ctx context.Context, campaignID ulid.ULID, delta float64) error
	countContributionsFn func(ctx context.Context, campaignID ulid.ULID) (int64, error)
}

func (f *fakeCampaignRepository) Create(ctx context.Context, c *campaign.Campaign) error {
	if f.createFn != nil {
		return f.createFn(ctx, c)
	}
	return nil
}

func (f *fakeCampaignRepository) Update(ctx context.Context, c *campaign.Campaign) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, c)
	}
	return nil
}

func (f *fakeCampaignRepository) UpdateFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
	if f.updateFieldsFn != nil {
		return f.updateFieldsFn(ctx, id, fields)
	}
	return nil
}

func (f *fakeCampaignRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeCampaignRepository) GetByID(ctx context.Context, id ulid.ULID) (*campaign.Campaign, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCampaignRepository) GetByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*campaign.Campaign, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeCampaignRepository) GetBySlug(ctx context.Context, slug string) (*campaign.Campaign, error) {
	if f.getBySlugFn != nil {
		return f.getBySlugFn(ctx, slug)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCampaignRepository) List(ctx context.Context, filters *campaign.Filters, pagination *pkg.PaginationParams) ([]*campaign.Campaign, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filters, pagination)
	}
	return nil, 0, nil
}

func (f *fakeCampaignRepository) GetByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*campaign.Campaign, int64, error) {
	return nil, 0, nil
}

func (f *fakeCampaignRepository) CheckCampaignBelongsToUser(ctx context.Context, campaignID, userID ulid.ULID) (bool, error) {
	if f.belongsFn != nil {
		return f.belongsFn(ctx, campaignID, userID)
	}
	return true, nil
}

func (f *fakeCampaignRepository) UpdateCurrentAmountAtomic(ctx context.Context, campaignID ulid.ULID, delta float64) error {
	if f.updateAmountAtomicFn != nil {
		return f.updateAmountAtomicFn(ctx, campaignID, delta)
	}
	return nil
}

func (f *fakeCampaignRepository) CountContributions(ctx context.Context, campaignID ulid.ULID) (int64, error) {
	if f.countContributionsFn != nil {
		return f.countContributionsFn(ctx, campaignID)
	}
	return 0, nil
}

type fakeUserRepository struct {
	getByIDFn func(ctx context.Context, id ulid.ULID) (*user.User, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, _ *user.User) error { return nil }
func (f *fakeUserRepository) Update(ctx context.Context, _ *user.User) error { return nil }
func (f *fakeUserRepository) Delete(ctx context.Context, _ ulid.ULID) error  { return nil }
func (f *fakeUserRepository) GetByEmail(ctx context.Context, _ string) (*user.User, error) {
	return nil, appErrors.ErrUserNotFound
}
func (f *fakeUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return &user.User{Id: id}, nil
}

type fakeCategoryRepository struct {
	getByIDFn func(ctx context.Context, id ulid.ULID) (*category.Category, error)
}

func (f *fakeCategoryRepository) Create(ctx context.Context, _ *category.Category) error { return nil }
func (f *fakeCategoryRepository) Update(ctx context.Context, _ *category.Category) error { return nil }
func (f *fakeCategoryRepository) Delete(ctx context.Context, _ ulid.ULID) error          { return nil }
func (f *fakeCategoryRepository) GetByID(ctx context.Context, id ulid.ULID) (*category.Category, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return &category.Category{Id: id, Name: "Animais"}, nil
}
func (f *fakeCategoryRepository) GetAll(ctx context.Context, _ *pkg.PaginationParams) ([]*category.Category, int64, error) {
	return nil, 0, nil
}
func (f *fakeCategoryRepository) GetByName(ctx context.Context, _ string) (*category.Category, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeCategoryRepository) DetachCampaigns(ctx context.Context, _ ulid.ULID) error {
	return nil
}

type fakeImageStorage struct {
	uploadFn func(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
	deleteFn func(ctx context.Context, objectName string) error
	deleted  []string
}

func (f *fakeImageStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if f.uploadFn != nil {
		return f.uploadFn(ctx, objectName, data, contentType)
	}
	return "http://storage.local/campaigns/" + objectName, nil
}

func (f *fakeImageStorage) Delete(ctx context.Context, objectName string) error {
	f.deleted = append(f.deleted, objectName)
	if f.deleteFn != nil {
		return f.deleteFn(ctx, objectName)
	}
	return nil
}

func newTestService(repo campaign.Repository) *campaign.Service {
	return campaign.NewService(
		repo,
		user.NewService(&fakeUserRepository{}),
		category.NewService(&fakeCategoryRepository{}),
		&fakeImageStorage{},
	)
}

func validCreateRequest(userID ulid.ULID) *domaincontracts.CampaignCreateRequest {
	now := time.Now()
	return &domaincontracts.CampaignCreateRequest{
		UserId:      userID,
		Title:       "Ajude o Abrigo São Francisco",
		Description: "Campanha para reformar o abrigo de animais",
		GoalAmount:  5000,
		StartDate:   now,
		EndDate:     now.AddDate(0, 1, 0),
	}
}

func TestCreateCampaignDerivesSlug(t *testing.T) {
	t.Parallel()

	var created *campaign.Campaign
	repo := &fakeCampaignRepository{
		createFn: func(ctx context.Context, c *campaign.Campaign) error {
			created = c
			return nil
		},
	}

	svc := newTestService(repo)
	entity, err := svc.CreateCampaign(context.Background(), validCreateRequest(ulid.Make()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created == nil {
		t.Fatal("expected campaign to be persisted")
	}
	if entity.Slug != "ajude-o-abrigo-sao-francisco" {
		t.Fatalf("unexpected slug: %q", entity.Slug)
	}
	if entity.Status != campaign.StatusDraft {
		t.Fatalf("expected default status draft, got %q", entity.Status)
	}
	if entity.CurrentAmount != 0 {
		t.Fatalf("expected zero current amount, got %v", entity.CurrentAmount)
	}
	if pkg.IsEmptyULID(entity.Id) {
		t.Fatal("expected generated id")
	}
}

func TestCreateCampaignValidations(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	now := time.Now()

	tests := []struct {
		name   string
		mutate func(req *domaincontracts.CampaignCreateRequest)
	}{
		{
			name:   "empty title",
			mutate: func(req *domaincontracts.CampaignCreateRequest) { req.Title = "   " },
		},
		{
			name:   "short description",
			mutate: func(req *domaincontracts.CampaignCreateRequest) { req.Description = "curta" },
		},
		{
			name:   "goal below minimum",
			mutate: func(req *domaincontracts.CampaignCreateRequest) { req.GoalAmount = 0.5 },
		},
		{
			name: "end date before start",
			mutate: func(req *domaincontracts.CampaignCreateRequest) {
				req.StartDate = now.AddDate(0, 1, 0)
				req.EndDate = now
			},
		},
		{
			name:   "invalid status",
			mutate: func(req *domaincontracts.CampaignCreateRequest) { req.Status = "paused" },
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest(userID)
			tt.mutate(req)

			svc := newTestService(&fakeCampaignRepository{})
			_, err := svc.CreateCampaign(context.Background(), req)
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
		})
	}
}

func TestCreateCampaignDuplicateSlug(t *testing.T) {
	t.Parallel()

	repo := &fakeCampaignRepository{
		createFn: func(ctx context.Context, c *campaign.Campaign) error {
			return gorm.ErrDuplicatedKey
		},
	}

	svc := newTestService(repo)
	_, err := svc.CreateCampaign(context.Background(), validCreateRequest(ulid.Make()))
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != appErrors.ErrSlugAlreadyExists.Code {
		t.Fatalf("expected %s, got %s", appErrors.ErrSlugAlreadyExists.Code, appErr.Code)
	}
}

func TestUpdateCampaignSlugFollowsTitle(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	campaignID := ulid.Make()
	existing := &campaign.Campaign{
		Id:            campaignID,
		UserId:        userID,
		Title:         "Ajude o Abrigo São Francisco",
		Slug:          "ajude-o-abrigo-sao-francisco",
		Description:   "Campanha para reformar o abrigo de animais",
		GoalAmount:    5000,
		CurrentAmount: 100,
		StartDate:     time.Now(),
		EndDate:       time.Now().AddDate(0, 1, 0),
		Status:        campaign.StatusActive,
	}

	var saved *campaign.Campaign
	repo := &fakeCampaignRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*campaign.Campaign, error) {
			copied := *existing
			return &copied, nil
		},
		updateFn: func(ctx context.Context, c *campaign.Campaign) error {
			saved = c
			return nil
		},
	}

	svc := newTestService(repo)

	t.Run("title changed regenerates slug", func(t *testing.T) {
		_, err := svc.UpdateCampaign(context.Background(), &domaincontracts.CampaignUpdateRequest{
			Id:          campaignID,
			UserId:      userID,
			Title:       "Reforma da Creche Municipal",
			Description: existing.Description,
			GoalAmount:  existing.GoalAmount,
			StartDate:   existing.StartDate,
			EndDate:     existing.EndDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Slug != "reforma-da-creche-municipal" {
			t.Fatalf("expected regenerated slug, got %q", saved.Slug)
		}
	})

	t.Run("same title keeps slug", func(t *testing.T) {
		_, err := svc.UpdateCampaign(context.Background(), &domaincontracts.CampaignUpdateRequest{
			Id:          campaignID,
			UserId:      userID,
			Title:       existing.Title,
			Description: "Descrição atualizada da campanha do abrigo",
			GoalAmount:  existing.GoalAmount,
			StartDate:   existing.StartDate,
			EndDate:     existing.EndDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Slug != existing.Slug {
			t.Fatalf("slug should not change, got %q", saved.Slug)
		}
	})
}

func TestUpdateCampaignClearsCategory(t *testing.T) {
	t.Parallel()

	userID := ulid.Make()
	categoryID := ulid.Make()
	existing := &campaign.Campaign{
		Id:          ulid.Make(),
		UserId:      userID,
		CategoryId:  &categoryID,
		Title:       "Ajude o Abrigo São Francisco",
		Slug:        "ajude-o-abrigo-sao-francisco",
		Description: "Campanha para reformar o abrigo de animais",
		GoalAmount:  5000,
		StartDate:   time.Now(),
		EndDate:     time.Now().AddDate(0, 1, 0),
		Status:      campaign.StatusActive,
	}

	var saved *campaign.Campaign
	repo := &fakeCampaignRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*campaign.Campaign, error) {
			copied := *existing
			return &copied, nil
		},
		updateFn: func(ctx context.Context, c *campaign.Campaign) error {
			saved = c
			return nil
		},
	}

	svc := newTestService(repo)
	updated, err := svc.UpdateCampaign(context.Background(), &domaincontracts.CampaignUpdateRequest{
		Id:          existing.Id,
		UserId:      userID,
		CategoryId:  nil,
		Title:       existing.Title,
		Description: existing.Description,
		GoalAmount:  existing.GoalAmount,
		StartDate:   existing.StartDate,
		EndDate:     existing.EndDate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved.CategoryId != nil {
		t.Fatal("expected cleared category to reach the repository")
	}
	if updated.CategoryId != nil {
		t.Fatal("expected response without category")
	}
}

func TestDeleteCampaignRequiresOwnership(t *testing.T) {
	t.Parallel()

	repo := &fakeCampaignRepository{
		belongsFn: func(ctx context.Context, campaignID, userID ulid.ULID) (bool, error) {
			return false, nil
		},
	}

	svc := newTestService(repo)
	err := svc.DeleteCampaign(context.Background(), ulid.Make(), ulid.Make())
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != appErrors.ErrResourceNotOwned.Code {
		t.Fatalf("expected %s, got %s", appErrors.ErrResourceNotOwned.Code, appErr.Code)
	}
}

func TestDeleteCampaignRemovesImage(t *testing.T) {
	t.Parallel()

	campaignID := ulid.Make()
	userID := ulid.Make()

	repo := &fakeCampaignRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*campaign.Campaign, error) {
			return &campaign.Campaign{
				Id:       campaignID,
				UserId:   userID,
				ImageURL: "http://storage.local/campaigns/campaigns/" + campaignID.String(),
			}, nil
		},
	}

	storage := &fakeImageStorage{}
	svc := campaign.NewService(
		repo,
		user.NewService(&fakeUserRepository{}),
		category.NewService(&fakeCategoryRepository{}),
		storage,
	)

	if err := svc.DeleteCampaign(context.Background(), campaignID, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(storage.deleted) != 1 {
		t.Fatalf("expected one deleted object, got %d", len(storage.deleted))
	}
	if storage.deleted[0] != "campaigns/"+campaignID.String() {
		t.Fatalf("unexpected object name: %q", storage.deleted[0])
	}
}

func TestGetCampaignDetails(t *testing.T) {
	t.Parallel()

	campaignID := ulid.Make()
	userID := ulid.Make()
	categoryID := ulid.Make()

	repo := &fakeCampaignRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*campaign.Campaign, error) {
			return &campaign.Campaign{
				Id:            campaignID,
				UserId:        userID,
				CategoryId:    &categoryID,
				Title:         "Reforma do Abrigo",
				GoalAmount:    1000,
				CurrentAmount: 250,
			}, nil
		},
		countContributionsFn: func(ctx context.Context, id ulid.ULID) (int64, error) {
			return 7, nil
		},
	}

	svc := campaign.NewService(
		repo,
		user.NewService(&fakeUserRepository{
			getByIDFn: func(ctx context.Context, id ulid.ULID) (*user.User, error) {
				return &user.User{Id: id, Name: "Maria Silva"}, nil
			},
		}),
		category.NewService(&fakeCategoryRepository{}),
		&fakeImageStorage{},
	)

	details, err := svc.GetCampaignDetails(context.Background(), campaignID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if details.OwnerName != "Maria Silva" {
		t.Fatalf("unexpected owner name: %q", details.OwnerName)
	}
	if details.CategoryName != "Animais" {
		t.Fatalf("unexpected category name: %q", details.CategoryName)
	}
	if details.ContributionsCount != 7 {
		t.Fatalf("unexpected contributions count: %d", details.ContributionsCount)
	}
	if details.Progress != 25 {
		t.Fatalf("unexpected progress: %v", details.Progress)
	}
}

func TestUploadImageValidations(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fakeCampaignRepository{})

	if _, err := svc.UploadImage(context.Background(), ulid.Make(), ulid.Make(), nil, "image/png"); err == nil {
		t.Fatal("expected error for empty file")
	}

	if _, err := svc.UploadImage(context.Background(), ulid.Make(), ulid.Make(), []byte("dados"), "application/pdf"); err == nil {
		t.Fatal("expected error for non-image content type")
	}
}
