package model

import (
	"time"

	"github.com/google/uuid"
)

// Todo is the domain model for a single task.
// Kept minimal on purpose; it’s easy to evolve.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a Todo with a fresh id and creation timestamp.
func New(text string) Todo {
	return Todo{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// Stats counts done and pending items.
func Stats(items []Todo) (done, pending int) {
	for _, it := range items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
