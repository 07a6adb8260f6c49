// Package plans holds the training-plan model and the block assignment logic
// that attaches workout blocks to a plan's week/day grid.
package plans

// Day is one training day inside a week, referencing assigned block IDs.
type Day struct {
	Number   int      `json:"numero"`
	BlockIDs []string `json:"bloques,omitempty"`
}

// Week groups the days of one plan week.
type Week struct {
	Number int   `json:"numero"`
	Days   []Day `json:"dias,omitempty"`
}

// Plan is a client's training plan. The ID is assigned by the backend.
type Plan struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"nombre" validate:"required"`
	ClientID string `json:"cliente" validate:"required"`
	Weeks    []Week `json:"semanas,omitempty"`
}
