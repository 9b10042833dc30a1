package contracts

type ContributionCreateRequest struct {
	Amount    float64 `json:"amount" binding:"required,gte=1"`
	Message   string  `json:"message" binding:"omitempty,max=500"`
	Anonymous bool    `json:"anonymous"`
}
