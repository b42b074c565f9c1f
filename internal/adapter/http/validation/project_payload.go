package validation

import (
	"strings"

	"github.com/vickyalvandob/task/internal/adapter/http/dto"
	"github.com/vickyalvandob/task/internal/core/domain"
)

type projectPayload struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description" validate:"omitempty,maxbytes=65535"`
}

func BuildProjectInput(req dto.ProjectRequest) (domain.ProjectInput, error) {
	payload := projectPayload{
		Title:       strings.TrimSpace(req.Title),
		Description: normalizeOptional(req.Description),
	}
	if err := check(payload); err != nil {
		return domain.ProjectInput{}, err
	}

	return domain.ProjectInput{
		Title:       payload.Title,
		Description: payload.Description,
	}, nil
}
