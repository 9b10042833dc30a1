package campaign

import (
	"context"
	"errors"
	"strings"
	"time"

	"Vaquinha/internal/domain/category"
	domaincontracts "Vaquinha/internal/domain/contracts"
	"Vaquinha/internal/domain/shared"
	"Vaquinha/internal/domain/user"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository      Repository
	UserService     *user.Service
	CategoryService *category.Service
	Storage         ImageStorage
}

func NewService(
	repo Repository,
	userSvc *user.Service,
	categorySvc *category.Service,
	storage ImageStorage,
) *Service {
	return &Service{
		Repository:      repo,
		UserService:     userSvc,
		CategoryService: categorySvc,
		Storage:         storage,
	}
}

func (s *Service) CreateCampaign(ctx context.Context, request *domaincontracts.CampaignCreateRequest) (*Campaign, error) {
	if err := Validate(*request); err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)
	if request.StartDate.Before(today) {
		return nil, appErrors.NewValidationError("start_date", "não pode ser anterior a hoje")
	}

	if _, err := s.UserService.GetByID(ctx, request.UserId); err != nil {
		return nil, appErrors.ErrUserNotFound.WithError(err)
	}

	if request.CategoryId != nil {
		if err := s.CategoryService.EnsureExists(ctx, *request.CategoryId); err != nil {
			return nil, err
		}
	}

	status := StatusDraft
	if request.Status != "" {
		status = CampaignStatus(request.Status)
	}

	now := time.Now()
	entity := &Campaign{
		Id:            pkg.GenerateULIDObject(),
		UserId:        request.UserId,
		CategoryId:    request.CategoryId,
		Title:         strings.TrimSpace(request.Title),
		Slug:          Slugify(request.Title),
		Description:   request.Description,
		GoalAmount:    request.GoalAmount,
		CurrentAmount: 0,
		StartDate:     request.StartDate,
		EndDate:       request.EndDate,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return nil, appErrors.ErrSlugAlreadyExists
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	return entity, nil
}

func (s *Service) UpdateCampaign(ctx context.Context, request *domaincontracts.CampaignUpdateRequest) (*Campaign, error) {
	if err := Validate(domaincontracts.CampaignCreateRequest{
		UserId:      request.UserId,
		Title:       request.Title,
		Description: request.Description,
		GoalAmount:  request.GoalAmount,
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		Status:      request.Status,
	}); err != nil {
		return nil, err
	}

	if err := s.CheckCampaignBelongsToUser(ctx, request.Id, request.UserId); err != nil {
		return nil, err
	}

	current, err := s.Repository.GetByID(ctx, request.Id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCampaignNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	if request.CategoryId != nil {
		if err := s.CategoryService.EnsureExists(ctx, *request.CategoryId); err != nil {
			return nil, err
		}
	}

	newTitle := strings.TrimSpace(request.Title)
	if newTitle != current.Title {
		current.Slug = Slugify(newTitle)
	}

	current.Title = newTitle
	current.CategoryId = request.CategoryId
	current.Description = request.Description
	current.GoalAmount = request.GoalAmount
	current.StartDate = request.StartDate
	current.EndDate = request.EndDate
	if request.Status != "" {
		current.Status = CampaignStatus(request.Status)
	}
	current.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, current); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return nil, appErrors.ErrSlugAlreadyExists
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	return current, nil
}

// DeleteCampaign remove a campanha e sua imagem de capa. As
// contribuições vinculadas são removidas em cascata.
func (s *Service) DeleteCampaign(ctx context.Context, campaignID, userID ulid.ULID) error {
	if err := s.CheckCampaignBelongsToUser(ctx, campaignID, userID); err != nil {
		return err
	}

	current, err := s.Repository.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrCampaignNotFound
		}
		return appErrors.NewDatabaseError(err)
	}

	if current.ImageURL != "" && s.Storage != nil {
		_ = s.Storage.Delete(ctx, imageObjectName(campaignID))
	}

	return s.Repository.Delete(ctx, campaignID)
}

func (s *Service) GetCampaignByID(ctx context.Context, campaignID ulid.ULID) (*Campaign, error) {
	campaign, err := s.Repository.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCampaignNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return campaign, nil
}

func (s *Service) GetCampaignBySlug(ctx context.Context, slug string) (*Campaign, error) {
	campaign, err := s.Repository.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCampaignNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return campaign, nil
}

type CampaignDetails struct {
	Campaign           *Campaign `json:"campaign"`
	OwnerName          string    `json:"ownerName"`
	CategoryName       string    `json:"categoryName,omitempty"`
	ContributionsCount int64     `json:"contributionsCount"`
	Progress           float64   `json:"progress"`
	Expired            bool      `json:"expired"`
}

// GetCampaignDetails monta a visão pública da campanha com dono,
// categoria e totais resolvidos explicitamente.
func (s *Service) GetCampaignDetails(ctx context.Context, campaignID ulid.ULID) (*CampaignDetails, error) {
	entity, err := s.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return s.buildDetails(ctx, entity)
}

func (s *Service) GetCampaignDetailsBySlug(ctx context.Context, slug string) (*CampaignDetails, error) {
	entity, err := s.GetCampaignBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.buildDetails(ctx, entity)
}

func (s *Service) buildDetails(ctx context.Context, entity *Campaign) (*CampaignDetails, error) {
	details := &CampaignDetails{
		Campaign: entity,
		Progress: entity.Progress(),
		Expired:  entity.IsExpired(),
	}

	owner, err := s.UserService.GetByID(ctx, entity.UserId)
	if err != nil {
		return nil, err
	}
	details.OwnerName = owner.Name

	if entity.CategoryId != nil {
		cat, err := s.CategoryService.GetByID(ctx, *entity.CategoryId)
		if err != nil {
			return nil, err
		}
		details.CategoryName = cat.Name
	}

	count, err := s.Repository.CountContributions(ctx, entity.Id)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	details.ContributionsCount = count

	return details, nil
}

func (s *Service) ListCampaigns(ctx context.Context, filters *Filters, pagination *pkg.PaginationParams) ([]*Campaign, int64, error) {
	campaigns, total, err := s.Repository.List(ctx, filters, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return campaigns, total, nil
}

func (s *Service) GetCampaignsByUserID(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Campaign, int64, error) {
	campaigns, total, err := s.Repository.GetByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return campaigns, total, nil
}

func (s *Service) CheckCampaignBelongsToUser(ctx context.Context, campaignID, userID ulid.ULID) error {
	userBelongs, err := s.Repository.CheckCampaignBelongsToUser(ctx, campaignID, userID)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	if !userBelongs {
		return appErrors.ErrResourceNotOwned
	}
	return nil
}

// UploadImage substitui a imagem de capa da campanha. O objeto anterior
// é sobrescrito no bucket.
func (s *Service) UploadImage(ctx context.Context, campaignID, userID ulid.ULID, data []byte, contentType string) (string, error) {
	if s.Storage == nil {
		return "", appErrors.ErrInternalServer
	}

	if err := s.CheckCampaignBelongsToUser(ctx, campaignID, userID); err != nil {
		return "", err
	}

	if len(data) == 0 {
		return "", appErrors.NewValidationError("image", "arquivo vazio")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", appErrors.NewValidationError("image", "deve ser uma imagem")
	}

	url, err := s.Storage.Upload(ctx, imageObjectName(campaignID), data, contentType)
	if err != nil {
		return "", err
	}

	if err := s.Repository.UpdateFields(ctx, campaignID, map[string]interface{}{
		"image_url":  url,
		"updated_at": time.Now(),
	}); err != nil {
		return "", appErrors.NewDatabaseError(err)
	}

	return url, nil
}

func (s *Service) RemoveImage(ctx context.Context, campaignID, userID ulid.ULID) error {
	if s.Storage == nil {
		return appErrors.ErrInternalServer
	}

	if err := s.CheckCampaignBelongsToUser(ctx, campaignID, userID); err != nil {
		return err
	}

	if err := s.Storage.Delete(ctx, imageObjectName(campaignID)); err != nil {
		return err
	}

	return s.Repository.UpdateFields(ctx, campaignID, map[string]interface{}{
		"image_url":  "",
		"updated_at": time.Now(),
	})
}

func imageObjectName(campaignID ulid.ULID) string {
	return "campaigns/" + campaignID.String()
}

func Validate(request domaincontracts.CampaignCreateRequest) error {
	if strings.TrimSpace(request.Title) == "" {
		return appErrors.NewValidationError("title", "é obrigatório")
	}
	if len(request.Title) > 255 {
		return appErrors.NewValidationError("title", "deve ter no máximo 255 caracteres")
	}
	if len(strings.TrimSpace(request.Description)) < 10 {
		return appErrors.NewValidationError("description", "deve ter no mínimo 10 caracteres")
	}
	if request.GoalAmount < 1 {
		return appErrors.NewValidationError("goal_amount", "deve ser no mínimo 1")
	}
	if request.EndDate.IsZero() || request.StartDate.IsZero() {
		return appErrors.NewValidationError("start_date", "datas de início e fim são obrigatórias")
	}
	if !request.EndDate.After(request.StartDate) {
		return appErrors.NewValidationError("end_date", "deve ser posterior à data de início")
	}
	if request.Status != "" && !CampaignStatus(request.Status).IsValid() {
		return appErrors.NewValidationError("status", "deve ser draft, active, funded ou closed")
	}
	return nil
}
