package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/go-resty/resty/v2"
)

// mapIPCError is the inverse of the daemon-side status mapping: the sentinel
// a caller would have seen in direct mode is reconstructed from the wire, so
// callers cannot tell the two modes apart with errors.Is.
func mapIPCError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorBody(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", store.ErrSecretNotFound, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrDaemonStopped, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrProviderFailure, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("ipc %d: %s", resp.StatusCode(), body)
	}
}

func errorBody(resp *resty.Response) string {
	var e models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(resp.Body()))
}
