package in

import (
	"context"

	"studyhub/internal/modules/motivation/dto"
)

type Usecase interface {
	// Enhanced fetches mood-aware motivation. The mood text is classified
	// by the content filter before any network call.
	Enhanced(ctx context.Context, input dto.MotivationInput) (dto.MotivationOutput, error)
}
