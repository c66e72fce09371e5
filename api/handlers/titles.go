// ABOUTME: Title handlers serve the detail surface of a single catalog entry
// ABOUTME: Session caching and accent colors follow the detail_cache and poster_color flags

package handlers

import (
	"context"
	"net/http"

	"bingefeed-api/api/dto/mappers"
	"bingefeed-api/api/dto/responses"
	"bingefeed-api/core/domain"
	"bingefeed-api/core/services"
	"bingefeed-api/pkg/featureflags"
	"github.com/danielgtaylor/huma/v2"
)

// TitleDetailService fetches the detail of one title
type TitleDetailService interface {
	Get(ctx context.Context, id int, opts services.DetailOptions) (*domain.TitleDetail, error)
}

// TitleHandler handles title detail requests
type TitleHandler struct {
	details TitleDetailService
}

// NewTitleHandler creates a new title handler
func NewTitleHandler(details TitleDetailService) *TitleHandler {
	return &TitleHandler{details: details}
}

// RegisterRoutes registers the title routes
func (h *TitleHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getTitle",
		Method:      http.MethodGet,
		Path:        "/titles/{id}",
		Summary:     "Get title detail",
		Description: "Fetches the extended detail of one catalog title",
		Tags:        []string{"Titles"},
	}, h.GetTitle)
}

// GetTitleInput defines the input for the GetTitle operation
type GetTitleInput struct {
	ID int `path:"id" minimum:"1" doc:"Catalog id"`
}

// GetTitleOutput wraps the detail
type GetTitleOutput struct {
	Body responses.TitleDetailResponse
}

// GetTitle handles GET /titles/{id}
func (h *TitleHandler) GetTitle(ctx context.Context, input *GetTitleInput) (*GetTitleOutput, error) {
	detail, err := h.details.Get(ctx, input.ID, services.DetailOptions{
		UseCache:  featureflags.IsEnabled(ctx, featureflags.DetailCache),
		WithColor: featureflags.IsEnabled(ctx, featureflags.PosterColor),
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetTitleOutput{Body: *mappers.ToTitleDetailResponse(detail)}, nil
}
