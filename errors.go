package heidelpay

import "fmt"

// ErrorKind classifies every error returned to SDK callers.
type ErrorKind string

const (
	NoInternetConnection   ErrorKind = "no_internet_connection"   // The backend could not be reached.
	GeneralProcessingError ErrorKind = "general_processing_error" // The request could not be built, sent or understood.
	NotAuthorized          ErrorKind = "not_authorized"           // The public key was rejected.
	ServerError            ErrorKind = "server_error"             // The backend answered with structured error details.
)

// Sentinels for use with errors.Is. Matching compares the kind only.
var (
	ErrNoInternetConnection = &Error{Kind: NoInternetConnection, Message: "no internet connection"}
	ErrGeneralProcessing    = &Error{Kind: GeneralProcessingError, Message: "general processing error"}
	ErrNotAuthorized        = &Error{Kind: NotAuthorized, Message: "not authorized"}
	ErrServer               = &Error{Kind: ServerError, Message: "server error"}
)

// Error is the only error type returned by [Client] operations.
type Error struct {
	Kind    ErrorKind
	Message string
	// Details is set for [ServerError] only.
	Details *ServerErrorDetails

	cause error
}

// Error makes *Error satisfy the stdlib error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if e.Details != nil && e.Details.MerchantMessage != "" {
		msg = fmt.Sprintf("%s: %s (%s)", msg, e.Details.MerchantMessage, e.Details.Code)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap exposes the lower level failure, usually a [*BackendError].
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

type errorOption func(*Error)

func withCause(err error) errorOption {
	return func(e *Error) {
		e.cause = err
	}
}

func withDetails(details *ServerErrorDetails) errorOption {
	return func(e *Error) {
		e.Details = details
	}
}

func newNoInternetConnectionError(opts ...errorOption) *Error {
	return newError(NoInternetConnection, "no internet connection", opts...)
}

func newGeneralProcessingError(opts ...errorOption) *Error {
	return newError(GeneralProcessingError, "general processing error", opts...)
}

func newNotAuthorizedError(opts ...errorOption) *Error {
	return newError(NotAuthorized, "not authorized", opts...)
}

func newServerError(details *ServerErrorDetails, opts ...errorOption) *Error {
	return newError(ServerError, "server error", append([]errorOption{withDetails(details)}, opts...)...)
}

func newError(kind ErrorKind, message string, opts ...errorOption) *Error {
	err := &Error{
		Kind:    kind,
		Message: message,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(err)
	}
	return err
}
