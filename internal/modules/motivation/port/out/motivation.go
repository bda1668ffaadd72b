package out

import (
	"context"

	"studyhub/internal/modules/motivation/domain"
)

type MotivationAPI interface {
	Enhanced(ctx context.Context, req domain.Request) (domain.Motivation, error)
}
