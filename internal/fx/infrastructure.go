package fx

import (
	"Vaquinha/config"
	"Vaquinha/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newUserRepository,
		newCategoryRepository,
		newCampaignRepository,
		newContributionRepository,
		newDashboardRepository,
		newImageStorage,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newUserRepository(db *gorm.DB) *infrastructure.UserRepository {
	return &infrastructure.UserRepository{DB: db}
}

func newCategoryRepository(db *gorm.DB) *infrastructure.CategoryRepository {
	return &infrastructure.CategoryRepository{DB: db}
}

func newCampaignRepository(db *gorm.DB) *infrastructure.CampaignRepository {
	return &infrastructure.CampaignRepository{DB: db}
}

func newContributionRepository(db *gorm.DB) *infrastructure.ContributionRepository {
	return &infrastructure.ContributionRepository{DB: db}
}

func newDashboardRepository(db *gorm.DB) *infrastructure.DashboardRepository {
	return &infrastructure.DashboardRepository{DB: db}
}

func newImageStorage(cfg *config.Config) (*infrastructure.MinioImageStorage, error) {
	return infrastructure.NewMinioImageStorage(cfg)
}
