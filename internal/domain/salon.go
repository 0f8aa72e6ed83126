package domain

import "time"

type Salon struct {
	ID        int64     `json:"id"`
	Name      string    `json:"salon" validate:"required,max=100"`
	Category  string    `json:"category" validate:"required"`
	Rating    int       `json:"rating" validate:"min=1,max=5"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
