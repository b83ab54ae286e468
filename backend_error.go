package heidelpay

import (
	"errors"
	"fmt"
	"net/http"
)

// BackendErrorKind classifies failures of a [BackendService] call.
type BackendErrorKind int

const (
	InvalidRequest        BackendErrorKind = iota + 1 // The request could not be built.
	InvalidServerResponse                             // The response could not be decoded.
	NoInternet                                        // The network was unreachable.
	RequestFailed                                     // The request failed for any other reason.
	ServerHTTPError                                   // The backend answered with an HTTP error status.
	ServerResponseError                               // The backend answered with an error body.
)

func (k BackendErrorKind) String() string {
	switch k {
	case InvalidRequest:
		return "invalid_request"
	case InvalidServerResponse:
		return "invalid_server_response"
	case NoInternet:
		return "no_internet"
	case RequestFailed:
		return "request_failed"
	case ServerHTTPError:
		return "server_http_error"
	case ServerResponseError:
		return "server_response_error"
	default:
		return "unknown"
	}
}

// BackendError is returned by [BackendService] implementations. Client
// operations convert it with [MapBackendError] before returning.
type BackendError struct {
	Kind BackendErrorKind
	// StatusCode is set for ServerHTTPError and, when known, ServerResponseError.
	StatusCode int
	// Errors holds the records of a ServerResponseError.
	Errors []ServerErrorRecord
	Err    error
}

func (e *BackendError) Error() string {
	if e == nil {
		return ""
	}
	msg := "heidelpay backend: " + e.Kind.String()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *BackendError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newBackendError(kind BackendErrorKind, err error) *BackendError {
	return &BackendError{Kind: kind, Err: err}
}

// MapBackendError converts a backend failure into the SDK error taxonomy.
// The result always wraps err.
func MapBackendError(err *BackendError) *Error {
	if err == nil {
		return newGeneralProcessingError()
	}
	switch err.Kind {
	case NoInternet:
		return newNoInternetConnectionError(withCause(err))
	case ServerHTTPError:
		if err.StatusCode == http.StatusUnauthorized || err.StatusCode == http.StatusForbidden {
			return newNotAuthorizedError(withCause(err))
		}
		return newGeneralProcessingError(withCause(err))
	case ServerResponseError:
		if details := FromBackendErrors(err.Errors); details != nil {
			return newServerError(details, withCause(err))
		}
		return newGeneralProcessingError(withCause(err))
	default:
		return newGeneralProcessingError(withCause(err))
	}
}

// toError funnels any failure into *Error so callers never see transport types.
func toError(err error) *Error {
	if err == nil {
		return nil
	}
	var sdkErr *Error
	if errors.As(err, &sdkErr) {
		return sdkErr
	}
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return MapBackendError(backendErr)
	}
	return newGeneralProcessingError(withCause(err))
}
