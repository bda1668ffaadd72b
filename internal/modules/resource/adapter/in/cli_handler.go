package in

import (
	"context"

	resourcedto "studyhub/internal/modules/resource/dto"
	resourcein "studyhub/internal/modules/resource/port/in"
)

type CLIHandler struct {
	usecase resourcein.Usecase
}

func NewCLIHandler(usecase resourcein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Find(ctx context.Context, subject, resourceType string, limit int) (resourcedto.SearchOutput, error) {
	return h.usecase.Find(ctx, resourcedto.SearchInput{
		Subject:      subject,
		ResourceType: resourceType,
		Limit:        limit,
	})
}
