package dto

// ===================== Request DTOs =====================

// VoteRequest upserts one vote
type VoteRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	SlotID    string `json:"slot_id" validate:"required"`
	Date      string `json:"date" validate:"required"` // YYYY-MM-DD
	Available *bool  `json:"available" validate:"required"`
}

// VoteDeleteRequest returns one vote to "no opinion"
type VoteDeleteRequest struct {
	UserID string `json:"user_id" validate:"required"`
	SlotID string `json:"slot_id" validate:"required"`
	Date   string `json:"date" validate:"required"`
}

// WeekSetRequest applies a uniform vote across a week's visible occurrences
type WeekSetRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	WeekStart string `json:"week_start" validate:"required"` // YYYY-MM-DD
	Available *bool  `json:"available" validate:"required"`
}

// WeekClearRequest deletes a week's votes. When Available is set, only
// votes matching that value are cleared.
type WeekClearRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	WeekStart string `json:"week_start" validate:"required"`
	Available *bool  `json:"available"`
}

// ===================== Response DTOs =====================

// OccurrenceResponse is one visible slot occurrence annotated for the viewer
type OccurrenceResponse struct {
	SlotID           string `json:"slot_id"`
	Date             string `json:"date"`
	StartTime        string `json:"start_time"`
	EndTime          string `json:"end_time"`
	Label            string `json:"label,omitempty"`
	Vote             string `json:"vote"`
	Viability        string `json:"viability"`
	AvailableCount   int    `json:"available_count"`
	UnavailableCount int    `json:"unavailable_count"`
}

// CalendarCellResponse is one date of the 35-cell grid
type CalendarCellResponse struct {
	Date        string               `json:"date"`
	IsPast      bool                 `json:"is_past"`
	IsToday     bool                 `json:"is_today"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

// CalendarResponse is the full projected grid for one viewer
type CalendarResponse struct {
	EventID  string                 `json:"event_id"`
	UserID   string                 `json:"user_id"`
	Today    string                 `json:"today"`
	Cells    []CalendarCellResponse `json:"cells"`
	Warnings []string               `json:"warnings,omitempty"`
}

// OccurrenceFailure reports one failed write inside a week batch
type OccurrenceFailure struct {
	SlotID string `json:"slot_id"`
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// WeekMutationResponse reports the outcome of a week set/clear
type WeekMutationResponse struct {
	Updated  int                 `json:"updated"`
	Failures []OccurrenceFailure `json:"failures,omitempty"`
	Status   string              `json:"status"`
	Warnings []string            `json:"warnings,omitempty"`
}

// WeekStatusResponse classifies a viewer's week
type WeekStatusResponse struct {
	WeekStart string   `json:"week_start"`
	Status    string   `json:"status"`
	Warnings  []string `json:"warnings,omitempty"`
}
