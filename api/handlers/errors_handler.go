// ABOUTME: Error slot handlers expose and acknowledge the current failure notice

package handlers

import (
	"context"
	"net/http"

	"bingefeed-api/api/dto/mappers"
	"bingefeed-api/api/dto/responses"
	"github.com/danielgtaylor/huma/v2"
)

// ErrorHandler serves the controller's error slot
type ErrorHandler struct {
	controller FeedController
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(controller FeedController) *ErrorHandler {
	return &ErrorHandler{controller: controller}
}

// RegisterRoutes registers the error routes
func (h *ErrorHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getCurrentError",
		Method:      http.MethodGet,
		Path:        "/errors/current",
		Summary:     "Get the current error",
		Description: "Returns the most recent unacknowledged failure notice, or null",
		Tags:        []string{"Errors"},
	}, h.Current)

	huma.Register(api, huma.Operation{
		OperationID: "acknowledgeError",
		Method:      http.MethodDelete,
		Path:        "/errors/current",
		Summary:     "Acknowledge the current error",
		Tags:        []string{"Errors"},
	}, h.Acknowledge)
}

// CurrentErrorOutput wraps the optional notice
type CurrentErrorOutput struct {
	Body responses.CurrentErrorResponse
}

// Current handles GET /errors/current
func (h *ErrorHandler) Current(ctx context.Context, input *struct{}) (*CurrentErrorOutput, error) {
	return &CurrentErrorOutput{Body: responses.CurrentErrorResponse{
		Error: mappers.ToErrorResponse(h.controller.CurrentError()),
	}}, nil
}

// AcknowledgeOutput reports whether a notice was cleared
type AcknowledgeOutput struct {
	Body responses.AcknowledgeResponse
}

// Acknowledge handles DELETE /errors/current
func (h *ErrorHandler) Acknowledge(ctx context.Context, input *struct{}) (*AcknowledgeOutput, error) {
	return &AcknowledgeOutput{Body: responses.AcknowledgeResponse{Cleared: h.controller.AcknowledgeError()}}, nil
}
