package dto

// CreateSlotRequest for adding a weekly slot template to an event
type CreateSlotRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required"` // zero-padded HH:MM
	EndTime   string `json:"end_time" validate:"required"`
	Label     string `json:"label"`
}

// SlotResponse for slot template details
type SlotResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label,omitempty"`
}

// SlotListResponse for an event's slot templates
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}
