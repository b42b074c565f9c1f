package dto

type ProjectRef struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}

type TaskItem struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	IsCompleted bool       `json:"is_completed"`
	DueDate     *string    `json:"due_date"`
	ProjectID   uint64     `json:"project_id"`
	Project     ProjectRef `json:"project"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

type TaskFilters struct {
	Search string `json:"search"`
	Filter string `json:"filter"`
}

// TaskListResponse mirrors a paginator: data plus page metadata, with the
// project list the task form needs.
type TaskListResponse struct {
	Data        []TaskItem   `json:"data"`
	CurrentPage int          `json:"current_page"`
	LastPage    int          `json:"last_page"`
	PerPage     int          `json:"per_page"`
	Total       int          `json:"total"`
	From        int          `json:"from"`
	To          int          `json:"to"`
	Filters     TaskFilters  `json:"filters"`
	Projects    []ProjectRef `json:"projects"`
}

type TaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"is_completed"`
	DueDate     *string `json:"due_date"`
	ProjectID   uint64  `json:"project_id"`
}

type TaskCompletionRequest struct {
	IsCompleted *bool `json:"is_completed"`
}
