package infrastructure

import (
	"context"
	"time"

	"Vaquinha/internal/domain/dashboard"
	appErrors "Vaquinha/internal/errors"
	"Vaquinha/internal/pkg"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	DB *gorm.DB
}

func (r *DashboardRepository) GetStats(ctx context.Context) (*dashboard.Stats, error) {
	stats := &dashboard.Stats{}

	if err := r.DB.WithContext(ctx).Table("campaigns").Count(&stats.TotalCampaigns).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if err := r.DB.WithContext(ctx).Table("campaigns").
		Where("status = ?", "active").
		Count(&stats.ActiveCampaigns).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if err := r.DB.WithContext(ctx).Table("campaigns").
		Where("status = ?", "funded").
		Count(&stats.FundedCampaigns).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if err := r.DB.WithContext(ctx).Table("contributions").Count(&stats.TotalContributions).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if err := r.DB.WithContext(ctx).Table("contributions").
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalRaised).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if err := r.DB.WithContext(ctx).Table("campaigns").
		Select("COALESCE(SUM(goal_amount), 0)").
		Scan(&stats.TotalGoal).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if err := r.DB.WithContext(ctx).Table("categories").Count(&stats.TotalCategories).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	if err := r.DB.WithContext(ctx).Table("users").Count(&stats.TotalUsers).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return stats, nil
}

func (r *DashboardRepository) GetRecentCampaigns(ctx context.Context, limit int) ([]*dashboard.CampaignSummary, error) {
	type row struct {
		Id                 string
		Title              string
		Slug               string
		OwnerName          string
		CategoryName       string
		GoalAmount         float64
		CurrentAmount      float64
		ContributionsCount int64
		Status             string
		CreatedAt          time.Time
	}

	var rows []row
	if err := r.DB.WithContext(ctx).Table("campaigns").
		Select(`campaigns.id, campaigns.title, campaigns.slug, users.name AS owner_name,
			COALESCE(categories.name, '') AS category_name,
			campaigns.goal_amount, campaigns.current_amount,
			(SELECT COUNT(*) FROM contributions WHERE contributions.campaign_id = campaigns.id) AS contributions_count,
			campaigns.status, campaigns.created_at`).
		Joins("JOIN users ON users.id = campaigns.user_id").
		Joins("LEFT JOIN categories ON categories.id = campaigns.category_id").
		Order("campaigns.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*dashboard.CampaignSummary, 0, len(rows))
	for _, item := range rows {
		id, err := pkg.ParseULID(item.Id)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		out = append(out, &dashboard.CampaignSummary{
			Id:                 id,
			Title:              item.Title,
			Slug:               item.Slug,
			OwnerName:          item.OwnerName,
			CategoryName:       item.CategoryName,
			GoalAmount:         item.GoalAmount,
			CurrentAmount:      item.CurrentAmount,
			ContributionsCount: item.ContributionsCount,
			Status:             item.Status,
			CreatedAt:          item.CreatedAt,
		})
	}
	return out, nil
}

func (r *DashboardRepository) GetRecentContributions(ctx context.Context, limit int) ([]*dashboard.ContributionSummary, error) {
	type row struct {
		Id            string
		CampaignId    string
		CampaignTitle string
		Contributor   string
		Anonymous     bool
		Amount        float64
		CreatedAt     time.Time
	}

	var rows []row
	if err := r.DB.WithContext(ctx).Table("contributions").
		Select(`contributions.id, contributions.campaign_id, campaigns.title AS campaign_title,
			COALESCE(users.name, '') AS contributor, contributions.anonymous,
			contributions.amount, contributions.created_at`).
		Joins("JOIN campaigns ON campaigns.id = contributions.campaign_id").
		Joins("LEFT JOIN users ON users.id = contributions.user_id").
		Order("contributions.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	out := make([]*dashboard.ContributionSummary, 0, len(rows))
	for _, item := range rows {
		id, err := pkg.ParseULID(item.Id)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		campaignID, err := pkg.ParseULID(item.CampaignId)
		if err != nil {
			return nil, appErrors.ErrInternalServer.WithError(err)
		}
		out = append(out, &dashboard.ContributionSummary{
			Id:            id,
			CampaignId:    campaignID,
			CampaignTitle: item.CampaignTitle,
			Contributor:   item.Contributor,
			Anonymous:     item.Anonymous,
			Amount:        item.Amount,
			CreatedAt:     item.CreatedAt,
		})
	}
	return out, nil
}
