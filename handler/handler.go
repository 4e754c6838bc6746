package handler

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wpt-fixtures/fixtures/fixture"
)

const headerRequestID = "X-Request-ID"

func NewFixtureHandler(name string, h fixture.Handler, log *zap.Logger) *FixtureHandler {
	return &FixtureHandler{
		name:    name,
		handler: h,
		log:     log,
	}
}

// FixtureHandler serves a single fixture over http.
type FixtureHandler struct {
	name    string
	handler fixture.Handler
	log     *zap.Logger
}

func (h *FixtureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("fixture", h.name),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
		zap.String("request_id", requestID(r)),
	)

	query, err := parseQuery(r.URL.RawQuery)
	if err != nil {
		log.Debug("malformed query", zap.Error(err))
	}

	request := &fixture.Request{
		Path:   r.URL.Path,
		Method: strings.ToUpper(r.Method),
		Query:  query,
		Header: r.Header,
	}

	response := fixture.NewResponse()

	// Handle the request, dropping whatever the fixture wrote on failure
	if err := h.handler.Handle(r.Context(), request, response); err != nil {
		log.Debug("fixture failed", zap.Error(err))
		sentry.CaptureException(err)
		response = newErrorResponse(err)
	}

	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	if len(response.Body) == 0 {
		return
	}

	// Write response body
	if _, err := w.Write(response.Body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}

// parseQuery splits the raw query on "&" only. A literal ";" stays part
// of the key or value it appears in. Malformed pairs are skipped and
// reported, the remaining pairs are still returned.
func parseQuery(rawQuery string) (url.Values, error) {
	return url.ParseQuery(strings.ReplaceAll(rawQuery, ";", "%3B"))
}

// requestID returns the caller supplied request id, or a fresh one. It is
// only used for log correlation and never echoed back.
func requestID(r *http.Request) string {
	if id := r.Header.Get(headerRequestID); id != "" {
		return id
	}

	return uuid.NewString()
}

// NewHealthHandler returns a handler reporting that the server is up.
func NewHealthHandler(log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if _, err := io.WriteString(w, "ok"); err != nil {
			log.Debug("failed to write response",
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
		}
	})
}
