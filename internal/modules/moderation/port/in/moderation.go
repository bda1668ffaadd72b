package in

import (
	"context"

	"studyhub/internal/modules/moderation/dto"
)

type Usecase interface {
	// Check classifies text without sending it anywhere. Other modules call
	// this before their network requests.
	Check(ctx context.Context, text string) (dto.DecisionOutput, error)
	// Doctor reports the health of configured classifier plugins.
	Doctor(ctx context.Context) ([]dto.DoctorResult, error)
}
