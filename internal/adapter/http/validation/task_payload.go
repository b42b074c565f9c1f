package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/vickyalvandob/task/internal/adapter/http/dto"
	"github.com/vickyalvandob/task/internal/core/domain"
	"github.com/vickyalvandob/task/pkg/apierrors"
)

const dateLayout = "2006-01-02"

type taskPayload struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,maxbytes=65535"`
	DueDate     *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	ProjectID   uint64  `json:"project_id" validate:"required"`
}

func BuildTaskInput(req dto.TaskRequest) (domain.TaskInput, error) {
	payload := taskPayload{
		Title:       strings.TrimSpace(req.Title),
		Description: normalizeOptional(req.Description),
		DueDate:     normalizeOptional(req.DueDate),
		ProjectID:   req.ProjectID,
	}
	if err := check(payload); err != nil {
		return domain.TaskInput{}, err
	}

	var dueDate *time.Time
	if payload.DueDate != nil {
		parsed, err := time.Parse(dateLayout, *payload.DueDate)
		if err != nil {
			return domain.TaskInput{}, domain.NewValidationError("due_date", apierrors.MsgFieldInvalidDate)
		}
		dueDate = &parsed
	}

	isCompleted := false
	if req.IsCompleted != nil {
		isCompleted = *req.IsCompleted
	}

	return domain.TaskInput{
		Title:       payload.Title,
		Description: payload.Description,
		IsCompleted: isCompleted,
		DueDate:     dueDate,
		ProjectID:   payload.ProjectID,
	}, nil
}

func BuildTaskCompletion(req dto.TaskCompletionRequest) (bool, error) {
	if req.IsCompleted == nil {
		return false, domain.NewValidationError("is_completed", apierrors.MsgFieldRequired)
	}
	return *req.IsCompleted, nil
}

// BuildTaskQuery validates the list parameters. Unknown filters and
// non-positive pages are rejected rather than silently defaulted.
func BuildTaskQuery(userID uint64, search, filter, page string) (domain.TaskQuery, error) {
	fields := make(map[string]string)

	taskFilter, err := domain.ParseTaskFilter(strings.TrimSpace(filter))
	if err != nil {
		fields["filter"] = apierrors.MsgFieldInvalidFilter
	}

	pageNumber := 1
	if page = strings.TrimSpace(page); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			fields["page"] = apierrors.MsgFieldInvalidPage
		} else {
			pageNumber = n
		}
	}

	if len(fields) > 0 {
		return domain.TaskQuery{}, &domain.ValidationError{Fields: fields}
	}

	return domain.TaskQuery{
		UserID: userID,
		Search: strings.TrimSpace(search),
		Filter: taskFilter,
		Page:   pageNumber,
	}, nil
}
