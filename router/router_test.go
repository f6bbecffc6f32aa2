package router

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewhub/config"
	"reviewhub/internal/client/model"
	"reviewhub/pkg/logger"
)

func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	logger.Init()
	dataDir := t.TempDir()

	cfg := config.Config{
		DataDir: dataDir,
		BaseURL: "https://reviews.example.com",
		Addr:    ":0",
	}
	server := httptest.NewServer(Setup(cfg))
	t.Cleanup(server.Close)
	return server, dataDir
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestClientLifecycle(t *testing.T) {
	server, dataDir := newTestServer(t)

	// Seed file producing the initial review list.
	seedPath := filepath.Join(dataDir, "launch.json")
	require.NoError(t, os.WriteFile(seedPath, []byte(`{"reviews":["Good","Bad"]}`), 0o644))

	// 1. Create the client from the seed.
	createReq := model.CreateClientRequest{
		ClientID: "acme123",
		ClientDetails: model.ClientDetails{
			ClientName:       "Acme Coffee",
			GoogleReviewLink: "https://g.page/acme/review",
			PrimaryColor:     "#112233",
			SecondaryColor:   "#445566",
		},
		SeedFile: "launch.json",
	}
	resp := doJSON(t, http.MethodPost, server.URL+"/api/clients/create", createReq)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created model.Client
	decodeBody(t, resp, &created)
	assert.Equal(t, []string{"Good", "Bad"}, created.Reviews)

	// 2. Creating the same id again conflicts.
	resp = doJSON(t, http.MethodPost, server.URL+"/api/clients/create", createReq)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// 3. Full document round-trips the seed order.
	resp = doJSON(t, http.MethodGet, server.URL+"/api/clients/full?clientId=acme123", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var full model.Client
	decodeBody(t, resp, &full)
	assert.Equal(t, []string{"Good", "Bad"}, full.Reviews)

	// 4. New review lands at the front.
	resp = doJSON(t, http.MethodPost, server.URL+"/api/reviews/add",
		model.ReviewRequest{ClientID: "acme123", Review: "Superb, will return!"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, server.URL+"/api/reviews?clientId=acme123", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reviews []string
	decodeBody(t, resp, &reviews)
	assert.Equal(t, []string{"Superb, will return!", "Good", "Bad"}, reviews)

	// 5. Update changes details without touching reviews.
	update := createReq.ClientDetails
	update.ClientName = "Acme Coffee Roasters"
	resp = doJSON(t, http.MethodPut, server.URL+"/api/clients/update?clientId=acme123", update)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated model.Client
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Acme Coffee Roasters", updated.ClientName)
	assert.Equal(t, []string{"Superb, will return!", "Good", "Bad"}, updated.Reviews)

	// 6. Detail projection excludes the review list entirely.
	resp = doJSON(t, http.MethodGet, server.URL+"/api/clients/detail?clientId=acme123", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "reviews")

	// 7. Listing shows the one valid client even next to seed files.
	resp = doJSON(t, http.MethodGet, server.URL+"/api/clients", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summaries []model.ClientSummary
	decodeBody(t, resp, &summaries)
	require.Len(t, summaries, 1)
	assert.Equal(t, "acme123", summaries[0].ClientID)

	// 8. QR endpoint returns PNG bytes for the deterministic URL.
	resp = doJSON(t, http.MethodGet, server.URL+"/api/qr?clientId=acme123", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Equal(t, "https://reviews.example.com/review/acme123", resp.Header.Get("X-Review-Url"))
	png, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(png), "\x89PNG"))

	// 9. Delete, then the document is gone.
	resp = doJSON(t, http.MethodDelete, server.URL+"/api/clients/delete?clientId=acme123", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, server.URL+"/api/clients/full?clientId=acme123", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestValidationAndErrorMapping(t *testing.T) {
	server, _ := newTestServer(t)

	// Bad clientId shape never reaches the store.
	resp := doJSON(t, http.MethodPost, server.URL+"/api/clients/create", model.CreateClientRequest{
		ClientID: "bad id!",
		ClientDetails: model.ClientDetails{
			ClientName:       "Acme Coffee",
			GoogleReviewLink: "https://g.page/acme/review",
			PrimaryColor:     "#112233",
			SecondaryColor:   "#445566",
		},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Unknown client maps to 404 across the review surface.
	resp = doJSON(t, http.MethodGet, server.URL+"/api/reviews?clientId=ghost1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, server.URL+"/api/reviews/random?clientId=ghost1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodDelete, server.URL+"/api/reviews/delete",
		model.ReviewRequest{ClientID: "ghost1", Review: "Never written"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Short review text is a 400 from validation.
	resp = doJSON(t, http.MethodPost, server.URL+"/api/reviews/add",
		model.ReviewRequest{ClientID: "ghost1", Review: "ok"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Wrong method answers 405.
	resp = doJSON(t, http.MethodGet, server.URL+"/api/clients/create", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	resp.Body.Close()

	// Every response carries a request id.
	resp = doJSON(t, http.MethodGet, server.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
	resp.Body.Close()
}

func TestRandomReviewEndpoint(t *testing.T) {
	server, dataDir := newTestServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "pair.json"),
		[]byte(`{"reviews":["A","B"]}`), 0o644))

	resp := doJSON(t, http.MethodPost, server.URL+"/api/clients/create", model.CreateClientRequest{
		ClientID: "acme123",
		ClientDetails: model.ClientDetails{
			ClientName:       "Acme Coffee",
			GoogleReviewLink: "https://g.page/acme/review",
			PrimaryColor:     "#112233",
			SecondaryColor:   "#445566",
		},
		SeedFile: "pair.json",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	for i := 0; i < 10; i++ {
		resp := doJSON(t, http.MethodGet, server.URL+"/api/reviews/random?clientId=acme123", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var random model.ReviewResponse
		decodeBody(t, resp, &random)
		assert.Contains(t, []string{"A", "B"}, random.Review)
	}
}
