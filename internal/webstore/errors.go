package webstore

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error represents a structured error returned by the Web Store API.
type Error struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("webstore: %s (code=%s status=%d)", e.Message, e.Code, e.Status)
}

// googleErrorEnvelope matches the error shape Google APIs wrap non-2xx
// responses in.
type googleErrorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// decodeAPIError materializes an Error from a non-200 response body.
func decodeAPIError(statusCode int, statusText string, body []byte) error {
	var env googleErrorEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Error.Message == "" {
		return &Error{
			Status:  statusCode,
			Code:    statusText,
			Message: strings.TrimSpace(string(body)),
		}
	}

	code := env.Error.Status
	if code == "" {
		code = statusText
	}
	return &Error{
		Status:  statusCode,
		Code:    code,
		Message: env.Error.Message,
	}
}

// UploadStateError reports a 200 upload response whose state is anything but
// the success sentinel, carrying the store's per-item diagnostics.
type UploadStateError struct {
	State  string
	Errors []ItemError
}

func (e *UploadStateError) Error() string {
	if e.State == UploadStateInProgress {
		return "upload still processing on the store side; check the developer console before retrying"
	}
	if len(e.Errors) == 0 {
		return fmt.Sprintf("upload failed with state %q", e.State)
	}
	details := make([]string, 0, len(e.Errors))
	for _, ie := range e.Errors {
		if ie.ErrorCode != "" {
			details = append(details, fmt.Sprintf("%s: %s", ie.ErrorCode, ie.ErrorDetail))
			continue
		}
		details = append(details, ie.ErrorDetail)
	}
	return fmt.Sprintf("upload failed with state %q: %s", e.State, strings.Join(details, "; "))
}

// PublishStatusError reports a 200 publish response whose status list lacks
// the OK sentinel.
type PublishStatusError struct {
	Status []string
	Detail []string
}

func (e *PublishStatusError) Error() string {
	msg := fmt.Sprintf("publish rejected with status %v", e.Status)
	if len(e.Detail) > 0 {
		msg += ": " + strings.Join(e.Detail, "; ")
	}
	return msg
}
