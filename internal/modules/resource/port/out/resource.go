package out

import (
	"context"

	"studyhub/internal/modules/resource/domain"
)

type ResourceAPI interface {
	Find(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error)
}
