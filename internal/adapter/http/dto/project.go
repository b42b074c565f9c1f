package dto

type ProjectItem struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Tasks       []TaskItem `json:"tasks,omitempty"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

type ProjectRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}
