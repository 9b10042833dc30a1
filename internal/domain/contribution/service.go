package contribution

import (
	"context"
	"errors"
	"strings"
	"time"

	"Vaquinha/internal/domain/campaign"
	"Vaquinha/internal/domain/shared"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository         Repository
	CampaignRepository campaign.Repository
	shared.BaseService
}

func NewService(repo Repository, campaignRepo campaign.Repository, userChecker *shared.UserCheckerService) *Service {
	return &Service{
		Repository:         repo,
		CampaignRepository: campaignRepo,
		BaseService: shared.BaseService{
			UserChecker: userChecker,
		},
	}
}

// MakeContribution registra uma contribuição em uma campanha ativa,
// soma o valor ao total arrecadado e marca a campanha como financiada
// quando a meta é atingida.
func (s *Service) MakeContribution(ctx context.Context, campaignID, userID ulid.ULID, amount float64, message string, anonymous bool) (*Contribution, error) {
	if amount < 1 {
		return nil, appErrors.NewValidationError("amount", "deve ser no mínimo 1")
	}
	if len(message) > 500 {
		return nil, appErrors.NewValidationError("message", "deve ter no máximo 500 caracteres")
	}

	if err := s.EnsureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	entity, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if entity.Status != campaign.StatusActive {
		return nil, appErrors.ErrCampaignNotActive
	}

	contrib := &Contribution{
		Id:         pkg.GenerateULIDObject(),
		CampaignId: campaignID,
		UserId:     userID,
		Amount:     amount,
		Message:    strings.TrimSpace(message),
		Anonymous:  anonymous,
		CreatedAt:  time.Now(),
	}

	if err := s.Repository.Create(ctx, contrib); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if err := s.CampaignRepository.UpdateCurrentAmountAtomic(ctx, campaignID, amount); err != nil {
		_ = s.Repository.Delete(ctx, contrib.Id)
		return nil, appErrors.NewDatabaseError(err)
	}

	entity, err = s.getCampaign(ctx, campaignID)
	if err != nil {
		s.revertContribution(ctx, contrib)
		return nil, err
	}

	if entity.CurrentAmount >= entity.GoalAmount {
		if err := s.CampaignRepository.UpdateFields(ctx, campaignID, map[string]interface{}{
			"status":     campaign.StatusFunded,
			"updated_at": time.Now(),
		}); err != nil {
			s.revertContribution(ctx, contrib)
			return nil, appErrors.NewDatabaseError(err)
		}
	}

	return contrib, nil
}

// revertContribution desfaz uma contribuição já persistida quando um
// passo posterior falha: estorna o valor e remove a linha, melhor esforço.
func (s *Service) revertContribution(ctx context.Context, contrib *Contribution) {
	_ = s.CampaignRepository.UpdateCurrentAmountAtomic(ctx, contrib.CampaignId, -contrib.Amount)
	_ = s.Repository.Delete(ctx, contrib.Id)
}

// CancelContribution estorna uma contribuição. O valor é subtraído do
// total da campanha e, se o total cair abaixo da meta, uma campanha
// financiada volta a ficar ativa.
func (s *Service) CancelContribution(ctx context.Context, contributionID, requesterID ulid.ULID) error {
	contrib, err := s.Repository.GetByID(ctx, contributionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrContributionNotFound
		}
		return appErrors.NewDatabaseError(err)
	}

	entity, err := s.getCampaign(ctx, contrib.CampaignId)
	if err != nil {
		return err
	}

	if !s.canCancel(contrib, entity, requesterID) {
		return appErrors.ErrResourceNotOwned
	}

	if err := s.CampaignRepository.UpdateCurrentAmountAtomic(ctx, contrib.CampaignId, -contrib.Amount); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	entity, err = s.getCampaign(ctx, contrib.CampaignId)
	if err != nil {
		return err
	}

	if entity.Status == campaign.StatusFunded && entity.CurrentAmount < entity.GoalAmount {
		if err := s.CampaignRepository.UpdateFields(ctx, contrib.CampaignId, map[string]interface{}{
			"status":     campaign.StatusActive,
			"updated_at": time.Now(),
		}); err != nil {
			return appErrors.NewDatabaseError(err)
		}
	}

	if err := s.Repository.Delete(ctx, contributionID); err != nil {
		_ = s.CampaignRepository.UpdateCurrentAmountAtomic(ctx, contrib.CampaignId, contrib.Amount)
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) GetContributions(ctx context.Context, campaignID ulid.ULID, pagination *pkg.PaginationParams) ([]*Contribution, int64, error) {
	if _, err := s.getCampaign(ctx, campaignID); err != nil {
		return nil, 0, err
	}

	contributions, total, err := s.Repository.GetByCampaignID(ctx, campaignID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return contributions, total, nil
}

func (s *Service) GetContributionsByUser(ctx context.Context, userID ulid.ULID, pagination *pkg.PaginationParams) ([]*Contribution, int64, error) {
	contributions, total, err := s.Repository.GetByUserID(ctx, userID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return contributions, total, nil
}

func (s *Service) getCampaign(ctx context.Context, campaignID ulid.ULID) (*campaign.Campaign, error) {
	entity, err := s.CampaignRepository.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrCampaignNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return entity, nil
}

// canCancel permite o estorno pelo próprio contribuinte ou pelo dono
// da campanha.
func (s *Service) canCancel(contrib *Contribution, entity *campaign.Campaign, requesterID ulid.ULID) bool {
	return contrib.UserId == requesterID || entity.UserId == requesterID
}
