package routes

import (
	domainCampaign "Vaquinha/internal/domain/campaign"
	domainContribution "Vaquinha/internal/domain/contribution"
)

type CampaignResponse struct {
	Campaign *domainCampaign.Campaign `json:"campaign"`
	Progress float64                  `json:"progress"`
}

func newCampaignResponse(c *domainCampaign.Campaign) *CampaignResponse {
	return &CampaignResponse{
		Campaign: c,
		Progress: c.Progress(),
	}
}

func newCampaignResponseList(campaigns []*domainCampaign.Campaign) []*CampaignResponse {
	out := make([]*CampaignResponse, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, newCampaignResponse(c))
	}
	return out
}

type CampaignDetailResponse struct {
	*domainCampaign.CampaignDetails
	RecentContributions []*domainContribution.Contribution `json:"recentContributions"`
}

type CampaignImageResponse struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}
