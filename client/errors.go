package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the onboarding API.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// ErrStillPending is returned by WaitForDecision when the poll budget runs
// out before the server reaches a decision.
var ErrStillPending = errors.New("onboarding decision still pending")

func apiErrorWithStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsNotFound reports an unknown merchant id.
func IsNotFound(err error) bool { return apiErrorWithStatus(err, http.StatusNotFound) }

// IsConflict reports a business-rule conflict (HTTP 409).
func IsConflict(err error) bool { return apiErrorWithStatus(err, http.StatusConflict) }

// IsUnauthorized reports a rejected or expired credential.
func IsUnauthorized(err error) bool { return apiErrorWithStatus(err, http.StatusUnauthorized) }

// IsAlreadyConnected matches the specific conflict raised when PSP setup is
// retried for a merchant that is already connected. Callers treat it as a
// soft success.
func IsAlreadyConnected(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusConflict {
		return false
	}
	msg := strings.ToLower(apiErr.Message + " " + apiErr.Detail)
	return strings.Contains(msg, "already connected")
}

// retryable reports whether an error is worth retrying during a poll:
// transport failures and server-side 5xx, but never client errors.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return err != nil
}
