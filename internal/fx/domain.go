package fx

import (
	"Vaquinha/config"
	"Vaquinha/internal/domain/auth"
	"Vaquinha/internal/domain/campaign"
	"Vaquinha/internal/domain/category"
	"Vaquinha/internal/domain/contribution"
	"Vaquinha/internal/domain/dashboard"
	"Vaquinha/internal/domain/shared"
	"Vaquinha/internal/domain/user"
	"Vaquinha/internal/infrastructure"
	"Vaquinha/internal/logger"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newUserService,
		newUserServiceAdapter,
		newUserCheckerService,
		newCategoryService,
		newOAuthProvider,
		newAuthService,
		newCampaignService,
		newContributionService,
		newDashboardService,
	),
)

func newUserService(repo *infrastructure.UserRepository) *user.Service {
	return user.NewService(repo)
}

func newUserServiceAdapter(userSvc *user.Service) *user.UserServiceAdapter {
	return user.NewUserServiceAdapter(userSvc)
}

func newUserCheckerService(adapter *user.UserServiceAdapter) *shared.UserCheckerService {
	return shared.NewUserCheckerService(adapter)
}

func newCategoryService(repo *infrastructure.CategoryRepository) *category.Service {
	return category.NewService(repo)
}

func newOAuthProvider(cfg *config.Config) auth.OAuthProvider {
	if !cfg.GoogleOAuth.Enabled {
		logger.Info().Msg("Google OAuth desabilitado (GOOGLE_OAUTH_ENABLED não está definido como 'true')")
		return nil
	}

	provider, err := auth.NewGoogleOAuthProvider(cfg.GoogleOAuth)
	if err != nil {
		logger.Warn().Err(err).Msg("Google OAuth habilitado mas mal configurado, login com Google indisponível")
		return nil
	}

	logger.Info().Msg("Google OAuth habilitado")
	return provider
}

func newAuthService(
	repo *infrastructure.UserRepository,
	userSvc *user.Service,
	provider auth.OAuthProvider,
) *auth.Service {
	return auth.NewService(repo, userSvc, provider)
}

func newCampaignService(
	repo *infrastructure.CampaignRepository,
	userSvc *user.Service,
	categorySvc *category.Service,
	storage *infrastructure.MinioImageStorage,
) *campaign.Service {
	return campaign.NewService(repo, userSvc, categorySvc, storage)
}

func newContributionService(
	repo *infrastructure.ContributionRepository,
	campaignRepo *infrastructure.CampaignRepository,
	userChecker *shared.UserCheckerService,
) *contribution.Service {
	return contribution.NewService(repo, campaignRepo, userChecker)
}

func newDashboardService(repo *infrastructure.DashboardRepository) *dashboard.Service {
	return dashboard.NewService(repo)
}
