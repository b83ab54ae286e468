package heidelpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// RequestKind identifies the logical operation of a [BackendRequest].
type RequestKind int

const (
	SetupRequest RequestKind = iota + 1
	CreatePaymentTypeRequest
	CreateServerObjectRequest
	RetrieveHirePurchasePlansRequest
)

func (k RequestKind) String() string {
	switch k {
	case SetupRequest:
		return "setup"
	case CreatePaymentTypeRequest:
		return "create_payment_type"
	case CreateServerObjectRequest:
		return "create_server_object"
	case RetrieveHirePurchasePlansRequest:
		return "retrieve_hire_purchase_plans"
	default:
		return "unknown"
	}
}

// BackendRequest is one call to the payment API.
type BackendRequest struct {
	Kind   RequestKind
	Method string
	// Path is relative to the API base URL and may carry a query string,
	// e.g. "types/card".
	Path string
	// Body is JSON with sorted keys, or nil for GET requests.
	Body []byte
}

// BackendService performs requests against the payment API. It returns the
// raw response body on success and a [*BackendError] otherwise. Exactly one
// of the two is non-nil.
type BackendService interface {
	PerformRequest(ctx context.Context, req BackendRequest) ([]byte, error)
}

// BackendServiceFunc lifts bare functions into [BackendService].
type BackendServiceFunc func(ctx context.Context, req BackendRequest) ([]byte, error)

// PerformRequest delegates to the wrapped function.
func (f BackendServiceFunc) PerformRequest(ctx context.Context, req BackendRequest) ([]byte, error) {
	return f(ctx, req)
}

func newSetupRequest() BackendRequest {
	return BackendRequest{Kind: SetupRequest, Method: http.MethodGet, Path: "keypair"}
}

func newCreatePaymentTypeRequest(t CreatePaymentType) (BackendRequest, error) {
	body, err := encodeBody(t)
	if err != nil {
		return BackendRequest{}, err
	}
	return BackendRequest{
		Kind:   CreatePaymentTypeRequest,
		Method: http.MethodPost,
		Path:   "types/" + t.Method().BackendPath(),
		Body:   body,
	}, nil
}

func newCreateServerObjectRequest(resourcePath string, v any) (BackendRequest, error) {
	body, err := encodeBody(v)
	if err != nil {
		return BackendRequest{}, err
	}
	return BackendRequest{
		Kind:   CreateServerObjectRequest,
		Method: http.MethodPost,
		Path:   resourcePath,
		Body:   body,
	}, nil
}

func newRetrieveHirePurchasePlansRequest(q HirePurchasePlansQuery) (BackendRequest, error) {
	path, err := q.path()
	if err != nil {
		return BackendRequest{}, newBackendError(InvalidRequest, err)
	}
	return BackendRequest{Kind: RetrieveHirePurchasePlansRequest, Method: http.MethodGet, Path: path}, nil
}

// encodeBody renders v with its JSON tags and custom marshalers, then
// re-encodes the result with object keys sorted. Numbers keep the plain
// decimal form of the first encoding, e.g. 33.34 rather than 3.334E1.
func encodeBody(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, newBackendError(InvalidRequest, fmt.Errorf("encode body: %w", err))
	}
	var generic any
	if err := decodeGeneric(raw, &generic); err != nil {
		return nil, newBackendError(InvalidRequest, fmt.Errorf("encode body: %w", err))
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(generic); err != nil {
		return nil, newBackendError(InvalidRequest, fmt.Errorf("sort body: %w", err))
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
