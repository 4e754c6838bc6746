package lambda

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/wpt-fixtures/fixtures/internal/server"
)

func newTestHandler(t *testing.T, source ProxySource) *LambdaHandler {
	echoEncoding := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", r.URL.Query().Get("content_encoding"))
		w.WriteHeader(http.StatusOK)
	})

	return NewLambdaHandler(LambdaHandlerParams{
		Config: Config{ProxySource: source},
		Handlers: []*server.HttpHandler{
			server.AsHttpHandler("/content-encoding.py", echoEncoding).Handler,
		},
		Context: context.Background(),
		Logger:  zaptest.NewLogger(t),
	})
}

func TestProxyFunction(t *testing.T) {
	sources := []ProxySource{ProxySourceApiGatewayV1, ProxySourceApiGatewayV2, ProxySourceAlb}

	for _, source := range sources {
		t.Run(source.String(), func(t *testing.T) {
			fn, err := newTestHandler(t, source).ProxyFunction()
			require.NoError(t, err)
			assert.NotNil(t, fn)
		})
	}
}

func TestProxyFunction_InvalidSource(t *testing.T) {
	h := newTestHandler(t, ProxySource("SQS"))

	_, err := h.ProxyFunction()
	assert.ErrorContains(t, err, "invalid proxy source")

	assert.Error(t, h.Start())
}

func TestProxyFunction_ApiGatewayV1(t *testing.T) {
	fn, err := newTestHandler(t, ProxySourceApiGatewayV1).ProxyFunction()
	require.NoError(t, err)

	proxy, ok := fn.(func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error))
	require.True(t, ok)

	resp, err := proxy(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/content-encoding.py",
		QueryStringParameters: map[string]string{
			"content_encoding": "gzip",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"gzip"}, resp.MultiValueHeaders["Content-Encoding"])
}

func TestProxySource_Validate(t *testing.T) {
	assert.NoError(t, ProxySourceApiGatewayV2.Validate())
	assert.Error(t, ProxySource("").Validate())
}
