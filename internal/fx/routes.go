package fx

import (
	"time"

	"Vaquinha/internal/domain/auth"
	"Vaquinha/internal/domain/campaign"
	"Vaquinha/internal/domain/category"
	"Vaquinha/internal/domain/contribution"
	"Vaquinha/internal/domain/dashboard"
	"Vaquinha/internal/domain/user"
	"Vaquinha/internal/middleware"
	"Vaquinha/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece handlers e rate limiters
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	jwtSvc *middleware.JwtService,
	authSvc *auth.Service,
	campaignSvc *campaign.Service,
	categorySvc *category.Service,
	contributionSvc *contribution.Service,
	dashboardSvc *dashboard.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService:         *userSvc,
		JwtService:          jwtSvc,
		AuthService:         *authSvc,
		CampaignService:     *campaignSvc,
		CategoryService:     *categorySvc,
		ContributionService: *contributionSvc,
		DashboardService:    *dashboardSvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
