package dashboard

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

type Stats struct {
	TotalCampaigns     int64   `json:"totalCampaigns"`
	ActiveCampaigns    int64   `json:"activeCampaigns"`
	FundedCampaigns    int64   `json:"fundedCampaigns"`
	TotalContributions int64   `json:"totalContributions"`
	TotalRaised        float64 `json:"totalRaised"`
	TotalGoal          float64 `json:"totalGoal"`
	TotalCategories    int64   `json:"totalCategories"`
	TotalUsers         int64   `json:"totalUsers"`
}

type CampaignSummary struct {
	Id                 ulid.ULID `json:"id"`
	Title              string    `json:"title"`
	Slug               string    `json:"slug"`
	OwnerName          string    `json:"ownerName"`
	CategoryName       string    `json:"categoryName,omitempty"`
	GoalAmount         float64   `json:"goalAmount"`
	CurrentAmount      float64   `json:"currentAmount"`
	Progress           float64   `json:"progress"`
	ContributionsCount int64     `json:"contributionsCount"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedAgo         string    `json:"createdAgo"`
}

type ContributionSummary struct {
	Id            ulid.ULID `json:"id"`
	CampaignId    ulid.ULID `json:"campaignId"`
	CampaignTitle string    `json:"campaignTitle"`
	Contributor   string    `json:"contributor"`
	Anonymous     bool      `json:"-"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedAgo    string    `json:"createdAgo"`
}

type Repository interface {
	GetStats(ctx context.Context) (*Stats, error)
	GetRecentCampaigns(ctx context.Context, limit int) ([]*CampaignSummary, error)
	GetRecentContributions(ctx context.Context, limit int) ([]*ContributionSummary, error)
}
