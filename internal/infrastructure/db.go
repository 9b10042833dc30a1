package infrastructure

import (
	"Vaquinha/config"
	"Vaquinha/internal/domain/campaign"
	"Vaquinha/internal/domain/category"
	"Vaquinha/internal/domain/contribution"
	"Vaquinha/internal/domain/user"
	"Vaquinha/internal/logger"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDb(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error().
			Err(err).
			Str("host", cfg.Database.Host).
			Int("port", cfg.Database.Port).
			Str("database", cfg.Database.DBName).
			Msg("Falha ao conectar ao banco de dados")
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao obter instância do banco de dados")
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	logger.Info().
		Str("host", cfg.Database.Host).
		Int("port", cfg.Database.Port).
		Str("database", cfg.Database.DBName).
		Msg("Conexão com banco de dados estabelecida com sucesso")

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func runMigrations(db *gorm.DB) error {
	logger.Info().Msg("Executando migrations...")

	entities := []interface{}{
		&user.User{},
		&category.Category{},
		&campaign.Campaign{},
		&contribution.Contribution{},
	}

	for _, entity := range entities {
		if err := db.AutoMigrate(entity); err != nil {
			logger.Error().
				Err(err).
				Str("entity", getEntityName(entity)).
				Msg("Erro ao migrar entidade")
			return err
		}
	}

	if err := ensureForeignKeys(db); err != nil {
		logger.Warn().Err(err).Msg("Aviso ao ajustar chaves estrangeiras")
	}

	logger.Info().Msg("Migrations executadas com sucesso!")
	return nil
}

// ensureForeignKeys aplica as regras de exclusão: contribuições caem
// junto com a campanha, campanhas e contribuições apenas perdem a
// referência quando categoria ou usuário são removidos.
func ensureForeignKeys(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	constraints := []struct {
		name  string
		query string
	}{
		{
			name: "fk_contributions_campaign",
			query: `ALTER TABLE contributions
				ADD CONSTRAINT fk_contributions_campaign
				FOREIGN KEY (campaign_id) REFERENCES campaigns(id) ON DELETE CASCADE`,
		},
		{
			name: "fk_contributions_user",
			query: `ALTER TABLE contributions
				ADD CONSTRAINT fk_contributions_user
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE SET NULL`,
		},
		{
			name: "fk_campaigns_category",
			query: `ALTER TABLE campaigns
				ADD CONSTRAINT fk_campaigns_category
				FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL`,
		},
		{
			name: "fk_campaigns_user",
			query: `ALTER TABLE campaigns
				ADD CONSTRAINT fk_campaigns_user
				FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE`,
		},
	}

	for _, constraint := range constraints {
		var exists bool
		checkQuery := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`
		if err := sqlDB.QueryRow(checkQuery, constraint.name).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		if _, err := sqlDB.Exec(constraint.query); err != nil {
			logger.Warn().
				Err(err).
				Str("constraint", constraint.name).
				Msg("Não foi possível criar chave estrangeira")
			continue
		}
		logger.Info().
			Str("constraint", constraint.name).
			Msg("Chave estrangeira criada")
	}

	return nil
}

func getEntityName(entity interface{}) string {
	switch entity.(type) {
	case *user.User:
		return "User"
	case *category.Category:
		return "Category"
	case *campaign.Campaign:
		return "Campaign"
	case *contribution.Contribution:
		return "Contribution"
	default:
		return "Unknown"
	}
}
