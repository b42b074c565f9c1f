package domain

import "time"

type Project struct {
	ID          uint64
	UserID      uint64
	Title       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Tasks       []Task
}

type ProjectInput struct {
	Title       string
	Description *string
}
