package googlesearch_test

import (
	"context"
	"errors"
	"testing"

	"leadhunter/pkg/browser"
	mockbrowser "leadhunter/pkg/browser/mock"
	"leadhunter/pkg/search/googlesearch"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSearch_ParsesResultAnchors(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)

	html := `<html><body>
	<a href="/url?q=https://www.linkedin.com/in/jane-silva&amp;sa=U">Jane Silva - Marketing Manager</a>
	<a href="https://www.linkedin.com/in/carlos-souza">Carlos Souza - Diretor</a>
	<a href="/search?q=next">Mais resultados</a>
	<a href="https://example.com/empty"></a>
	<a>sem href</a>
	</body></html>`

	pager.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, searchURL string) (*browser.Document, error) {
			require.Contains(t, searchURL, "google.com/search?q=")
			require.Contains(t, searchURL, "acme")

			return &browser.Document{URL: searchURL, HTML: html}, nil
		},
	)

	engine := googlesearch.New(pager)
	require.Equal(t, "google", engine.Name())

	results, err := engine.Search(context.Background(), `site:linkedin.com/in/ "acme"`)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// the /url indirection is unwrapped
	require.Equal(t, "https://www.linkedin.com/in/jane-silva", results[0].URL)
	require.Equal(t, "Jane Silva - Marketing Manager", results[0].Title)
	// direct links pass through
	require.Equal(t, "https://www.linkedin.com/in/carlos-souza", results[1].URL)
}

func TestSearch_FetchErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)

	pager.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("navigation timeout"))

	_, err := googlesearch.New(pager).Search(context.Background(), "acme")
	require.Error(t, err)
}
