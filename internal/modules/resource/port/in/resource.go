package in

import (
	"context"

	"studyhub/internal/modules/resource/dto"
)

type Usecase interface {
	// Find searches the backend resource catalog. The subject is classified
	// by the content filter first; blocked input never reaches the network.
	Find(ctx context.Context, input dto.SearchInput) (dto.SearchOutput, error)
}
