package figma_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dsdoc/dsdoc"
	"github.com/dsdoc/dsdoc/figma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nodesFixture = `{
	"name": "Design File",
	"nodes": {
		"1:2": {
			"document": {
				"id": "1:2",
				"name": "Card",
				"type": "FRAME",
				"layoutMode": "HORIZONTAL",
				"layoutGrow": 1,
				"absoluteBoundingBox": {"x": 0, "y": 0, "width": 320.4, "height": 48.6}
			},
			"components": {}
		}
	}
}`

func TestClient_Nodes(t *testing.T) {
	t.Parallel()

	t.Run("fetches nodes with the token header", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/files/key123/nodes", r.URL.Path)
			assert.Equal(t, "1:2", r.URL.Query().Get("ids"))
			assert.Equal(t, "secret", r.Header.Get("X-Figma-Token"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(nodesFixture))
		}))
		defer server.Close()

		client := figma.NewClient("secret", figma.WithBaseURL(server.URL))

		resp, err := client.Nodes(context.Background(), "key123", "1:2")

		require.NoError(t, err)
		assert.Equal(t, "Design File", resp.Name)
		require.Contains(t, resp.Nodes, "1:2")
		assert.Equal(t, "Card", resp.Nodes["1:2"].Document.Name)
	})

	t.Run("requires a token", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests.Add(1)
		}))
		defer server.Close()

		client := figma.NewClient("", figma.WithBaseURL(server.URL))

		_, err := client.Nodes(context.Background(), "key123", "1:2")

		require.Error(t, err)
		assert.Equal(t, dsdoc.EUNAUTHORIZED, dsdoc.ErrorCode(err))
		assert.Equal(t, int64(0), requests.Load(), "no request without a token")
	})

	t.Run("requires a file key and node id", func(t *testing.T) {
		t.Parallel()

		client := figma.NewClient("secret")

		_, err := client.Nodes(context.Background(), "", "1:2")
		assert.Equal(t, dsdoc.EINVALID, dsdoc.ErrorCode(err))

		_, err = client.Nodes(context.Background(), "key123", "")
		assert.Equal(t, dsdoc.EINVALID, dsdoc.ErrorCode(err))
	})

	t.Run("maps auth failures", func(t *testing.T) {
		t.Parallel()

		for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			}))

			client := figma.NewClient("bad-token", figma.WithBaseURL(server.URL))
			_, err := client.Nodes(context.Background(), "key123", "1:2")

			require.Error(t, err)
			assert.Equal(t, dsdoc.EUNAUTHORIZED, dsdoc.ErrorCode(err))
			server.Close()
		}
	})

	t.Run("maps missing files to not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := figma.NewClient("secret", figma.WithBaseURL(server.URL))
		_, err := client.Nodes(context.Background(), "key123", "1:2")

		require.Error(t, err)
		assert.Equal(t, dsdoc.ENOTFOUND, dsdoc.ErrorCode(err))
	})

	t.Run("propagates the upstream retry-after hint", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Retry-After", "30")
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := figma.NewClient("secret", figma.WithBaseURL(server.URL))
		_, err := client.Nodes(context.Background(), "key123", "1:2")

		var rateErr *figma.RateLimitError
		require.True(t, errors.As(err, &rateErr))
		assert.Equal(t, 30*time.Second, rateErr.RetryAfter)
	})

	t.Run("maps server errors to internal", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := figma.NewClient("secret", figma.WithBaseURL(server.URL))
		_, err := client.Nodes(context.Background(), "key123", "1:2")

		require.Error(t, err)
		assert.Equal(t, dsdoc.EINTERNAL, dsdoc.ErrorCode(err))
	})

	t.Run("rejects invalid response bodies", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := figma.NewClient("secret", figma.WithBaseURL(server.URL))
		_, err := client.Nodes(context.Background(), "key123", "1:2")

		require.Error(t, err)
		assert.Equal(t, dsdoc.EINVALID, dsdoc.ErrorCode(err))
	})

	t.Run("fails fast when the local budget is exhausted", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests.Add(1)
			w.Write([]byte(nodesFixture))
		}))
		defer server.Close()

		client := figma.NewClient("secret",
			figma.WithBaseURL(server.URL),
			figma.WithRateLimit(1),
		)

		_, err := client.Nodes(context.Background(), "key123", "1:2")
		require.NoError(t, err)

		_, err = client.Nodes(context.Background(), "key123", "1:2")

		var rateErr *figma.RateLimitError
		require.True(t, errors.As(err, &rateErr))
		assert.Equal(t, int64(1), requests.Load(), "rejected call never reaches the API")
	})
}

func TestClient_ExtractLayout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(nodesFixture))
	}))
	defer server.Close()

	client := figma.NewClient("secret", figma.WithBaseURL(server.URL))

	layout, err := client.ExtractLayout(context.Background(), "key123", "1:2")

	require.NoError(t, err)
	assert.Equal(t, "key123", layout.FileKey)
	assert.Equal(t, "1:2", layout.NodeID)
	assert.Equal(t, "Design File", layout.Name)
	require.NotNil(t, layout.Root)
	assert.Equal(t, figma.Fill, layout.Root.Width)
	assert.Equal(t, figma.Px(48.6), layout.Root.Height)
	assert.False(t, layout.ExtractedAt.IsZero())
}
