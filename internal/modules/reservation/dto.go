package reservation

type CreateRequest struct {
	UserID          int64  `json:"-"`
	SalonID         int64  `json:"salon_id" binding:"required"`
	ServiceType     string `json:"service_type" binding:"required"`
	Date            string `json:"reservation_date" binding:"required"`
	Time            string `json:"reservation_time" binding:"required"`
	DurationMinutes int    `json:"duration"`
	Notes           string `json:"notes"`
}

// UpdateRequest carries a partial patch; nil fields keep their stored
// values.
type UpdateRequest struct {
	ServiceType     *string `json:"service_type"`
	Date            *string `json:"reservation_date"`
	Time            *string `json:"reservation_time"`
	DurationMinutes *int    `json:"duration"`
	Notes           *string `json:"notes"`
	Status          *string `json:"status"`
}

type BookedSlot struct {
	Time            string `json:"reservation_time"`
	DurationMinutes int    `json:"duration"`
}

type AvailabilityResponse struct {
	Date           string       `json:"date"`
	SalonID        int64        `json:"salon_id"`
	AvailableSlots []string     `json:"availableSlots"`
	BookedSlots    []BookedSlot `json:"bookedSlots"`
}
