package fixture

import (
	"context"
	"fmt"
	"net/http"
)

const (
	// BodyParam carries the JSON-like payload echoed by UpdateURL.
	BodyParam = "body"

	HeaderAdAuctionAllowed = "Ad-Auction-Allowed"
	HeaderContentType      = "Content-Type"
)

// UpdateURL echoes the body query parameter back as a JSON response,
// after stripping the escaping the test page applied to it. It serves as
// the interest group update endpoint in auction tests.
func UpdateURL(_ context.Context, req *Request, resp *Response) error {
	raw, ok := FirstQueryParam(req, BodyParam)
	if !ok {
		return fmt.Errorf("%w: missing query parameter %q", ErrInvalidInput, BodyParam)
	}

	body, err := NormalizeJSONString(raw)
	if err != nil {
		return fmt.Errorf("query parameter %q: %w", BodyParam, err)
	}

	resp.StatusCode = http.StatusOK
	resp.Header.Set(HeaderAdAuctionAllowed, "true")
	resp.Header.Set(HeaderContentType, "application/json")
	resp.Body = []byte(body)

	return nil
}
