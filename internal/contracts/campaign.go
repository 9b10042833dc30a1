package contracts

type CampaignCreateRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"required,min=10"`
	CategoryID  string  `json:"category_id" binding:"omitempty"`
	GoalAmount  float64 `json:"goal_amount" binding:"required,gte=1"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	Status      string  `json:"status" binding:"omitempty,oneof=draft active funded closed"`
}

type CampaignUpdateRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"required,min=10"`
	CategoryID  string  `json:"category_id" binding:"omitempty"`
	GoalAmount  float64 `json:"goal_amount" binding:"required,gte=1"`
	StartDate   string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	Status      string  `json:"status" binding:"omitempty,oneof=draft active funded closed"`
}
