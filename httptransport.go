package heidelpay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Version is sent in the User-Agent header.
const Version = "1.0.0"

const maxResponseBytes = 1 << 20

// HTTPBackendService is the default [BackendService]. It sends JSON requests
// authenticated with the public key.
type HTTPBackendService struct {
	publicKey      PublicKey
	baseURL        string
	client         *http.Client
	logger         *slog.Logger
	acceptLanguage string
}

var _ BackendService = (*HTTPBackendService)(nil)

// NewHTTPBackendService builds the HTTP backend. It honors [WithHTTPClient],
// [WithBaseURL], [WithLogger] and [WithAcceptLanguage].
func NewHTTPBackendService(publicKey PublicKey, opts ...Option) *HTTPBackendService {
	if publicKey.IsZero() {
		panic("heidelpay: public key is required")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return newHTTPBackendService(publicKey, cfg)
}

func newHTTPBackendService(publicKey PublicKey, cfg *config) *HTTPBackendService {
	return &HTTPBackendService{
		publicKey:      publicKey,
		baseURL:        cfg.baseURL,
		client:         cfg.httpClient,
		logger:         cfg.logger,
		acceptLanguage: cfg.acceptLanguage,
	}
}

// PerformRequest implements [BackendService].
func (s *HTTPBackendService) PerformRequest(ctx context.Context, req BackendRequest) ([]byte, error) {
	httpReq, requestID, err := s.newHTTPRequest(ctx, req)
	if err != nil {
		return nil, newBackendError(InvalidRequest, err)
	}

	start := time.Now()
	resp, err := s.client.Do(httpReq)
	if err != nil {
		kind := classifyTransportError(err)
		s.logger.WarnContext(ctx, "heidelpay request failed",
			slog.String("method", req.Method),
			slog.String("path", req.Path),
			slog.String("request_id", requestID),
			slog.String("kind", kind.String()),
			slog.Any("error", err),
		)
		return nil, newBackendError(kind, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, newBackendError(classifyTransportError(err), fmt.Errorf("read response: %w", err))
	}
	s.logger.DebugContext(ctx, "heidelpay request",
		slog.String("method", req.Method),
		slog.String("path", req.Path),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)
	return classifyResponse(resp.StatusCode, body)
}

func (s *HTTPBackendService) newHTTPRequest(ctx context.Context, req BackendRequest) (*http.Request, string, error) {
	if req.Method == "" || req.Path == "" {
		return nil, "", errors.New("method and path are required")
	}
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	target := s.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, "", err
	}

	md, _ := RequestMetadataFromContext(ctx)
	requestID := md.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	language := md.AcceptLanguage
	if language == "" {
		language = s.acceptLanguage
	}

	httpReq.Header.Set("Authorization", s.publicKey.AuthorizationHeader())
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", "heidelpay-go/"+Version)
	httpReq.Header.Set("Request-Id", requestID)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}
	if language != "" {
		httpReq.Header.Set("Accept-Language", language)
	}
	return httpReq, requestID, nil
}

// classifyResponse turns a completed exchange into a body or a backend error.
// Authorization failures win over error bodies; error bodies win over other
// HTTP error statuses.
func classifyResponse(status int, body []byte) ([]byte, error) {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, &BackendError{Kind: ServerHTTPError, StatusCode: status}
	}
	if records, ok := parseServerErrors(body); ok {
		return nil, &BackendError{Kind: ServerResponseError, StatusCode: status, Errors: records}
	}
	if status >= http.StatusBadRequest {
		return nil, &BackendError{Kind: ServerHTTPError, StatusCode: status}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &BackendError{Kind: InvalidServerResponse, StatusCode: status, Err: errors.New("empty response body")}
	}
	return body, nil
}

func classifyTransportError(err error) BackendErrorKind {
	if errors.Is(err, context.Canceled) {
		return RequestFailed
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NoInternet
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NoInternet
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return NoInternet
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return NoInternet
	}
	return RequestFailed
}
