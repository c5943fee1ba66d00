package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/flowdash/flowdash/contract"
)

// mapAPIError converts a non-2xx response into a sentinel error. The
// failure envelope's tag decides the sentinel; the envelope's message is
// carried along for display. A body that is not an envelope falls back to
// the HTTP status.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var envelope contract.ApiResponse[any]
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil || envelope.Error == "" {
		return fmt.Errorf("http %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}

	switch envelope.Error {
	case contract.CodeValidationError:
		return fmt.Errorf("%w: %s", ErrValidation, envelope.Message)
	case contract.CodeUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, envelope.Message)
	case contract.CodeForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, envelope.Message)
	case contract.CodeNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, envelope.Message)
	default:
		return fmt.Errorf("%w: %s", ErrServer, envelope.Message)
	}
}
