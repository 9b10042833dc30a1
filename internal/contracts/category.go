package contracts

type CategoryCreateRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
	Icon        string `json:"icon" binding:"omitempty,max=50"`
}

type CategoryUpdateRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=255"`
	Icon        string `json:"icon" binding:"omitempty,max=50"`
}
