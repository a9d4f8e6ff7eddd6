package duckduckgo_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"leadhunter/pkg/search/duckduckgo"
	"leadhunter/pkg/serrors"

	"github.com/stretchr/testify/require"
)

// roundTripFunc serves canned responses without a live endpoint.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func newEngine(rt roundTripFunc) *duckduckgo.Engine {
	return duckduckgo.New(&http.Client{Transport: rt}, "test-agent")
}

func TestSearch_DecodesRedirectTargets(t *testing.T) {
	redirect := "//duckduckgo.com/l/?uddg=" + url.QueryEscape("https://www.linkedin.com/in/jane-silva") + "&rut=abc"
	html := `<html><body>
	<a class="result__a" href="` + redirect + `">Jane Silva - Marketing Manager</a>
	<a class="result__a" href="https://www.linkedin.com/in/carlos-souza">Carlos Souza - Diretor</a>
	<a class="result__a" href="/html/?q=next">paginação</a>
	<a class="other" href="https://example.com">não é resultado</a>
	</body></html>`

	var gotRequest *http.Request
	engine := newEngine(func(r *http.Request) (*http.Response, error) {
		gotRequest = r

		return response(http.StatusOK, html), nil
	})
	require.Equal(t, "duckduckgo", engine.Name())

	results, err := engine.Search(context.Background(), `site:linkedin.com/in/ acme`)
	require.NoError(t, err)

	require.Equal(t, "html.duckduckgo.com", gotRequest.URL.Host)
	require.Equal(t, "test-agent", gotRequest.Header.Get("User-Agent"))

	require.Len(t, results, 2)
	require.Equal(t, "https://www.linkedin.com/in/jane-silva", results[0].URL)
	require.Equal(t, "Jane Silva - Marketing Manager", results[0].Title)
	require.Equal(t, "https://www.linkedin.com/in/carlos-souza", results[1].URL)
}

func TestSearch_NonSuccessStatusIsTransportError(t *testing.T) {
	engine := newEngine(func(*http.Request) (*http.Response, error) {
		return response(http.StatusTooManyRequests, "slow down"), nil
	})

	_, err := engine.Search(context.Background(), "acme")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrTransportUnreachable)
}

func TestSearch_TransportFailure(t *testing.T) {
	engine := newEngine(func(*http.Request) (*http.Response, error) {
		return nil, &url.Error{Op: "Get", URL: "https://html.duckduckgo.com", Err: io.EOF}
	})

	_, err := engine.Search(context.Background(), "acme")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrTransportUnreachable)
}
