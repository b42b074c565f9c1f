package domain

import (
	"fmt"
	"time"
)

type TaskFilter string

const (
	TaskFilterAll       TaskFilter = "all"
	TaskFilterCompleted TaskFilter = "completed"
	TaskFilterPending   TaskFilter = "pending"
)

// ParseTaskFilter maps the raw filter parameter to a TaskFilter. An empty
// value means TaskFilterAll.
func ParseTaskFilter(raw string) (TaskFilter, error) {
	switch TaskFilter(raw) {
	case "":
		return TaskFilterAll, nil
	case TaskFilterAll, TaskFilterCompleted, TaskFilterPending:
		return TaskFilter(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTaskFilter, raw)
}

type ProjectRef struct {
	ID    uint64
	Title string
}

type Task struct {
	ID          uint64
	Title       string
	Description *string
	IsCompleted bool
	DueDate     *time.Time
	Project     ProjectRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TaskInput struct {
	Title       string
	Description *string
	IsCompleted bool
	DueDate     *time.Time
	ProjectID   uint64
}

type TaskQuery struct {
	UserID  uint64
	Search  string
	Filter  TaskFilter
	Page    int
	PerPage int
}

// Offset of the first row of the requested page. Pages whose offset does
// not fit in an int saturate at math.MaxInt, past any real row count.
func (q TaskQuery) Offset() int {
	if q.Page < 1 || q.PerPage < 1 {
		return 0
	}
	return pageOffset(q.Page, q.PerPage)
}

type TaskPage struct {
	Tasks      []Task
	Pagination Pagination
	Search     string
	Filter     TaskFilter
	// Projects lists every project of the user for the task form picker.
	Projects []ProjectRef
}
