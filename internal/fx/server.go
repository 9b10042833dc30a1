package fx

import (
	"context"
	"time"

	"Vaquinha/config"
	"Vaquinha/internal/logger"
	"Vaquinha/internal/middleware"
	"Vaquinha/internal/routes"

	docs "Vaquinha/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go.uber.org/fx"
)

// ServerModule fornece a configuração do servidor HTTP
var ServerModule = fx.Module("server",
	fx.Provide(
		newRouter,
	),
	fx.Invoke(
		setupRoutes,
	),
)

func newRouter() *gin.Engine {
	return gin.Default()
}

func setupRoutes(
	lc fx.Lifecycle,
	cfg *config.Config,
	router *gin.Engine,
	handler *routes.Handler,
	jwtSvc *middleware.JwtService,
	authRateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.CORSMiddleware())

	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := router.Group("/api")
	public.Use(middleware.RateLimit(authRateLimiter))
	{
		public.POST("/auth/login", handler.Authenticate)
		public.POST("/auth/register", handler.Registration)
		public.POST("/auth/google", handler.GoogleAuth)

		public.GET("/dashboard", handler.GetDashboard)

		public.GET("/categories", handler.ListCategories)
		public.GET("/categories/:id", handler.GetCategory)

		public.GET("/campaigns", handler.ListCampaigns)
		public.GET("/campaigns/:id", handler.GetCampaign)
		public.GET("/campaigns/slug/:slug", handler.GetCampaignBySlug)
		public.GET("/campaigns/:id/contributions", handler.GetCampaignContributions)
	}

	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(jwtSvc))
	private.Use(middleware.RateLimitByUser(100, time.Minute))
	{
		users := private.Group("/users")
		{
			users.GET("/me", handler.GetMe)
			users.PATCH("/me", handler.UpdateUserName)
			users.PATCH("/me/password", handler.UpdateUserPassword)
			users.DELETE("/me", handler.DeleteUser)
			users.GET("/me/campaigns", handler.MyCampaigns)
			users.GET("/me/contributions", handler.MyContributions)
		}

		campaigns := private.Group("/campaigns")
		{
			campaigns.POST("", handler.CreateCampaign)
			campaigns.PATCH("/:id", handler.UpdateCampaign)
			campaigns.DELETE("/:id", handler.DeleteCampaign)
			campaigns.POST("/:id/image", handler.UploadCampaignImage)
			campaigns.DELETE("/:id/image", handler.RemoveCampaignImage)
			campaigns.POST("/:id/contributions", handler.ContributeToCampaign)
		}

		categories := private.Group("/categories")
		{
			categories.POST("", handler.CreateCategory)
			categories.PATCH("/:id", handler.UpdateCategory)
			categories.DELETE("/:id", handler.DeleteCategory)
		}

		private.DELETE("/contributions/:contribution_id", handler.CancelContribution)
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info().
		Str("address", serverAddr).
		Str("environment", cfg.App.Environment).
		Msg("Servidor iniciando")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := router.Run(serverAddr); err != nil {
					logger.Fatal().Err(err).Msg("Falha ao iniciar servidor")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Servidor parando...")
			return nil
		},
	})
}
