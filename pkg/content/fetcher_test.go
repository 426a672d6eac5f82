package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_ExtractsVisibleText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>
			<head><title>Acme</title><style>body { color: red; }</style></head>
			<body>
				<nav>Home About Contact</nav>
				<script>console.log("tracking")</script>
				<main>
					<h1>About   Acme</h1>
					<p>We make   everything.</p>
				</main>
				<footer>Copyright Acme</footer>
			</body>
		</html>`))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(0)
	text, err := fetcher.FetchText(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "About Acme We make everything.", text)
}

func TestHTTPFetcher_SendsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(0)
	_, err := fetcher.FetchText(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Contains(t, gotUA, "VoiceEngine")
}

func TestHTTPFetcher_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(0)
	_, err := fetcher.FetchText(context.Background(), server.URL)
	require.Error(t, err)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, server.URL, fetchErr.URL)
	assert.Contains(t, fetchErr.Message, "503")
}

func TestHTTPFetcher_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><script>only code</script></body></html>"))
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(0)
	_, err := fetcher.FetchText(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no visible text")
}

func TestHTTPFetcher_InvalidURL(t *testing.T) {
	fetcher := NewHTTPFetcher(0)

	for _, bad := range []string{"", "not a url", "/relative/path", "acme.example"} {
		_, err := fetcher.FetchText(context.Background(), bad)
		require.Error(t, err, "expected error for %q", bad)
	}
}

func TestHTTPFetcher_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := NewHTTPFetcher(0)
	_, err := fetcher.FetchText(ctx, server.URL)
	require.Error(t, err)
}
