package api

import (
	"strconv"

	"github.com/danielgtaylor/huma/v2"

	"github.com/cinescope/cinescope-server/internal/domain"
	domainerrors "github.com/cinescope/cinescope-server/internal/errors"
	"github.com/cinescope/cinescope-server/internal/http/response"
	"github.com/cinescope/cinescope-server/internal/service"
)

// PageEnvelope is the body of every category response.
type PageEnvelope struct {
	Success   bool             `json:"success"`
	Data      *domain.Page     `json:"data"`
	Category  string           `json:"category" doc:"Category name, e.g. genres/action or movies/trending"`
	MediaType domain.MediaType `json:"media_type,omitempty" doc:"movie or tv; omitted for mixed results"`
}

// PageOutput wraps a category page for Huma.
type PageOutput struct {
	Body *PageEnvelope
}

func newPageOutput(r *service.CategoryResult) *PageOutput {
	return &PageOutput{Body: &PageEnvelope{
		Success:   true,
		Data:      r.Page,
		Category:  r.Category,
		MediaType: r.MediaType,
	}}
}

// EnvelopeTransformer wraps response bodies so that every response shares the
// success flag. Category pages are already enveloped; errors become
// response.ErrorEnvelope.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	switch body := v.(type) {
	case *PageEnvelope, response.Envelope, response.ErrorEnvelope:
		return v, nil
	case *APIError:
		return response.ErrorEnvelope{
			Success: false,
			Code:    body.Code,
			Message: body.Message,
			Details: body.Details,
		}, nil
	case error:
		return response.ErrorEnvelope{
			Success: false,
			Code:    string(domainerrors.CodeInternal),
			Message: body.Error(),
		}, nil
	}

	code, err := strconv.Atoi(status)
	if err != nil {
		return nil, err
	}
	return response.Envelope{Success: code < 400, Data: v}, nil
}
