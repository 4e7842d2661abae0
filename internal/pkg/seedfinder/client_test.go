package seedfinder

import (
	"GrowAGram/internal/api/config"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.SeedfinderConfig{URL: srv.URL + "/", ApiKey: "key123", Timeout: 2})
}

func TestClient_GetStrainInfo(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/strain.json", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "Sensi_Seeds", q.Get("br"))
		assert.Equal(t, "Northern_Lights", q.Get("str"))
		assert.Equal(t, "key123", q.Get("ac"))
		assert.Equal(t, "en", q.Get("lng"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`{
			"error": false,
			"id": "Northern_Lights",
			"name": "Northern Lights",
			"brinfo": {
				"id": "Sensi_Seeds",
				"name": "Sensi Seeds",
				"type": "mostly indica",
				"cbd": "low",
				"descr": "<p>A <b>classic</b> indica.</p>",
				"pic": "https://example.org/nl.jpg",
				"flowering": {"auto": false, "days": 50, "info": "~50 days"}
			},
			"links": {"info": "https://example.org/nl"}
		}`))
	})

	info, err := client.GetStrainInfo(context.Background(), "Sensi_Seeds", "Northern_Lights")
	require.NoError(t, err)
	assert.Equal(t, "Northern Lights", info.Name)
	assert.Equal(t, "Sensi Seeds", info.Brinfo.Name)
	assert.Equal(t, 50, info.Brinfo.Flowering.Days)
	assert.Equal(t, "https://example.org/nl.jpg", info.Brinfo.Pic)
}

func TestClient_GetStrainInfo_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		breeder string
	}{
		{name: "api error flag", status: http.StatusOK, body: `{"error": true, "info": "strain not found"}`, breeder: "x"},
		{name: "server error", status: http.StatusBadGateway, body: `oops`, breeder: "x"},
		{name: "missing ids", status: http.StatusOK, body: `{}`, breeder: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			_, err := client.GetStrainInfo(context.Background(), tt.breeder, "y")
			assert.ErrorIs(t, err, ErrLookup)
		})
	}
}
