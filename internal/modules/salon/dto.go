package salon

import "salonbook/internal/repository"

type CreateRequest struct {
	Name     string `json:"salon" binding:"required,max=100" validate:"required,max=100"`
	Category string `json:"category" binding:"required" validate:"required,max=50"`
	Rating   int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

type UpdateRequest struct {
	Name     *string `json:"salon"`
	Category *string `json:"category"`
	Rating   *int    `json:"rating"`
}

type Stats struct {
	Total      int64                      `json:"total"`
	ByCategory []repository.CategoryCount `json:"byCategory"`
}
