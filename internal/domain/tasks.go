package domain

import "time"

// TasksList is the companion record created alongside every mentorship
// relation. Task content is managed elsewhere; the workflow only guarantees the
// list exists.
type TasksList struct {
	ID        int64     `json:"id" db:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
