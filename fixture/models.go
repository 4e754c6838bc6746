package fixture

import (
	"context"
	"net/http"
	"net/url"
)

// Request represents an incoming fixture request.
type Request struct {
	Path   string
	Method string
	Query  url.Values
	Header http.Header
}

// Response represents the outgoing fixture response. Handlers mutate it
// in place, the caller writes it out once the handler returns.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewResponse creates an empty response with the default status.
func NewResponse() *Response {
	return &Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
	}
}

// Handler is the interface for fixture handlers.
type Handler interface {
	Handle(ctx context.Context, req *Request, resp *Response) error
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(ctx context.Context, req *Request, resp *Response) error

func (f HandlerFunc) Handle(ctx context.Context, req *Request, resp *Response) error {
	return f(ctx, req, resp)
}
