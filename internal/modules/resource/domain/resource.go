package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "studyhub/internal/platform/errors"
)

var validate = validator.New()

const DefaultLimit = 5

type SearchRequest struct {
	Subject      string `validate:"required,min=2"`
	ResourceType string
	Limit        int `validate:"gte=1,lte=20"`
}

func (r SearchRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		if r.Subject == "" || len(r.Subject) < 2 {
			return fmt.Errorf("%w: subject must be at least 2 characters", apperrors.ErrValidation)
		}
		return fmt.Errorf("%w: limit must be between 1 and 20", apperrors.ErrValidation)
	}
	return nil
}

type Resource struct {
	Title           string
	Description     string
	ResourceType    string
	Difficulty      string
	URL             string
	SimilarityScore float64
	Tags            []string
}

type SearchResult struct {
	Resources []Resource
	Feedback  string
}
