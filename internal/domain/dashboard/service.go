package dashboard

import (
	"context"

	"Vaquinha/internal/domain/campaign"
	"Vaquinha/internal/pkg"
)

const recentLimit = 5

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

type DashboardResponse struct {
	Stats               *Stats                 `json:"stats"`
	RecentCampaigns     []*CampaignSummary     `json:"recentCampaigns"`
	RecentContributions []*ContributionSummary `json:"recentContributions"`
}

func (s *Service) GetDashboard(ctx context.Context) (*DashboardResponse, error) {
	stats, err := s.Repository.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	recentCampaigns, err := s.Repository.GetRecentCampaigns(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	recentContributions, err := s.Repository.GetRecentContributions(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	for _, item := range recentCampaigns {
		item.Progress = campaign.ProgressPercentage(item.CurrentAmount, item.GoalAmount)
		item.CreatedAgo = pkg.RelativeTime(item.CreatedAt)
	}

	for _, item := range recentContributions {
		if item.Anonymous || item.Contributor == "" {
			item.Contributor = "Anônimo"
		}
		item.CreatedAgo = pkg.RelativeTime(item.CreatedAt)
	}

	return &DashboardResponse{
		Stats:               stats,
		RecentCampaigns:     recentCampaigns,
		RecentContributions: recentContributions,
	}, nil
}
