package domain

import "time"

type User struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Email             string    `json:"email" db:"email"`
	AvailableToMentor bool      `json:"available_to_mentor" db:"available_to_mentor"`
	NeedMentoring     bool      `json:"need_mentoring" db:"need_mentoring"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}
