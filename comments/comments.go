// Package comments holds the commenting thread attached to training plans.
package comments

import "time"

// Reply is a nested answer on a comment.
type Reply struct {
	ID        string    `json:"_id,omitempty"`
	AuthorID  string    `json:"autor,omitempty"`
	Text      string    `json:"texto" validate:"required"`
	CreatedAt time.Time `json:"fecha,omitempty"`
}

// Comment is a top-level message on a plan's thread.
type Comment struct {
	ID        string    `json:"_id,omitempty"`
	PlanID    string    `json:"planificacion" validate:"required"`
	AuthorID  string    `json:"autor,omitempty"`
	Text      string    `json:"texto" validate:"required"`
	CreatedAt time.Time `json:"fecha,omitempty"`
	Replies   []Reply   `json:"respuestas,omitempty"`

	// ClientRef is a client-generated reference so a resubmitted comment can
	// be de-duplicated by the backend.
	ClientRef string `json:"refCliente,omitempty"`
}
