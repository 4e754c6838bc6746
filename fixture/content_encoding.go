package fixture

import "context"

const (
	ContentEncodingParam = "content_encoding"
	AllowOriginParam     = "allow_origin"

	HeaderContentEncoding = "Content-Encoding"
	HeaderAllowOrigin     = "Access-Control-Allow-Origin"
)

// ContentEncoding copies the content_encoding and allow_origin query
// parameters into the matching response headers. Values are passed
// through verbatim. Absent parameters leave the response untouched.
func ContentEncoding(_ context.Context, req *Request, resp *Response) error {
	if v, ok := FirstQueryParam(req, ContentEncodingParam); ok {
		resp.Header.Set(HeaderContentEncoding, string(v))
	}

	if v, ok := FirstQueryParam(req, AllowOriginParam); ok {
		resp.Header.Set(HeaderAllowOrigin, string(v))
	}

	return nil
}
