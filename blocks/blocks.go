// Package blocks holds the workout-block model: a named routine of exercises
// that coaches compose and later assign into training plans.
package blocks

// Exercise is one movement inside a block.
type Exercise struct {
	Name  string `json:"nombre" validate:"required"`
	Sets  int    `json:"series" validate:"gte=0"`
	Reps  int    `json:"repeticiones" validate:"gte=0"`
	Rest  string `json:"descanso,omitempty"`
	Notes string `json:"notas,omitempty"`
}

// Block is an exercise routine. The ID is assigned by the backend.
type Block struct {
	ID          string     `json:"_id,omitempty"`
	Name        string     `json:"nombre" validate:"required"`
	Description string     `json:"descripcion,omitempty"`
	Exercises   []Exercise `json:"ejercicios,omitempty" validate:"dive"`
}
