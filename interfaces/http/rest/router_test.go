package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sociograph/application/services"
	"sociograph/domain/recommend"
	"sociograph/domain/social"
	"sociograph/infrastructure/config"
	"sociograph/infrastructure/observability"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Environment:        "test",
		DefaultMaxDistance: 3,
		MetricsNamespace:   "sociograph_test",
		EnableCORS:         false,
	}
	logger := zap.NewNop()
	network := social.NewNetwork()
	collector := observability.NewCollector(cfg.MetricsNamespace)
	networkService := services.NewNetworkService(network, collector, logger)
	recommendationService := services.NewRecommendationService(
		recommend.NewEngine(network), cfg.DefaultMaxDistance, collector, logger)

	router := NewRouter(cfg, networkService, recommendationService, collector, nil, logger)
	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestHealthEndpoints(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/metrics"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestCreateUserAndGet(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/users", `{"id": 7}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	data := decodeBody(t, resp)
	assert.Equal(t, float64(7), data["id"])

	resp, err := http.Get(server.URL + "/api/v1/users/7")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data = decodeBody(t, resp)
	assert.Equal(t, float64(0), data["friend_count"])
}

func TestGetUnknownUserReturns404(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/users/99")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateUserRejectsMissingID(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/users", `{}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConnectionLifecycle(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/connections", `{"source_id": 1, "target_id": 2}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp, err := http.Get(server.URL + "/api/v1/users/1/friends")
	require.NoError(t, err)
	data := decodeBody(t, resp)
	assert.Equal(t, []interface{}{float64(2)}, data["friends"])

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/v1/connections?source=1&target=2", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/v1/users/1/friends")
	require.NoError(t, err)
	data = decodeBody(t, resp)
	assert.Empty(t, data["friends"])
}

func TestCreateConnectionRejectsSelfLoop(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/connections", `{"source_id": 5, "target_id": 5}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The rejected request must not create the user as a side effect.
	check, err := http.Get(server.URL + "/api/v1/users/5")
	require.NoError(t, err)
	check.Body.Close()
	assert.Equal(t, http.StatusNotFound, check.StatusCode)
}

func TestDeleteConnectionRequiresQueryParams(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodDelete, server.URL+"/api/v1/connections?source=1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func seedDiamond(t *testing.T, server *httptest.Server) {
	t.Helper()
	for _, edge := range [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}} {
		body := fmt.Sprintf(`{"source_id": %d, "target_id": %d}`, edge[0], edge[1])
		resp := postJSON(t, server.URL+"/api/v1/connections", body)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
}

func TestRecommendations(t *testing.T) {
	server := newTestServer(t)
	seedDiamond(t, server)

	tests := []struct {
		name     string
		query    string
		strategy string
		want     []map[string]float64
	}{
		{
			name:     "defaults to weighted",
			query:    "",
			strategy: "weighted",
			want:     []map[string]float64{{"user_id": 4, "score": 8}},
		},
		{
			name:     "common friends",
			query:    "?strategy=common-friends",
			strategy: "common-friends",
			want:     []map[string]float64{{"user_id": 4, "score": 2}},
		},
		{
			name:     "network distance",
			query:    "?strategy=network-distance&max_distance=2",
			strategy: "network-distance",
			want:     []map[string]float64{{"user_id": 4, "score": 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(server.URL + "/api/v1/users/1/recommendations" + tt.query)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			data := decodeBody(t, resp)

			assert.Equal(t, tt.strategy, data["strategy"])
			results, ok := data["results"].([]interface{})
			require.True(t, ok)
			require.Len(t, results, len(tt.want))
			for i, want := range tt.want {
				got := results[i].(map[string]interface{})
				assert.Equal(t, want["user_id"], got["user_id"])
				assert.Equal(t, want["score"], got["score"])
			}
		})
	}
}

func TestRecommendationsRejectBadInput(t *testing.T) {
	server := newTestServer(t)
	seedDiamond(t, server)

	tests := []struct {
		name  string
		query string
	}{
		{"unknown strategy", "?strategy=psychic"},
		{"zero max distance", "?max_distance=0"},
		{"non-numeric max distance", "?max_distance=lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(server.URL + "/api/v1/users/1/recommendations" + tt.query)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestRecommendationsForUnknownUserAreEmpty(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/users/42/recommendations")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)
	assert.Empty(t, data["results"])
}

func TestStatsAndGraphSnapshot(t *testing.T) {
	server := newTestServer(t)
	seedDiamond(t, server)

	resp, err := http.Get(server.URL + "/api/v1/stats")
	require.NoError(t, err)
	data := decodeBody(t, resp)
	assert.Equal(t, float64(4), data["users"])
	assert.Equal(t, float64(4), data["connections"])

	resp, err = http.Get(server.URL + "/api/v1/graph")
	require.NoError(t, err)
	data = decodeBody(t, resp)
	assert.NotEmpty(t, data["snapshot_id"])
	assert.Equal(t, float64(4), data["user_count"])
	assert.Equal(t, float64(4), data["connection_count"])
	assert.Len(t, data["users"], 4)
	assert.Len(t, data["connections"], 4)
}
