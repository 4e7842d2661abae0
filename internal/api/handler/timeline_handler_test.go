package handler

import (
	"GrowAGram/internal/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTimelineRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTimelineHandler(service.NewTimelineService(time.UTC))
	r := gin.New()
	g := r.Group("/api/timeline")
	g.GET("/date", h.DateFromDay)
	g.GET("/day", h.DayFromDate)
	g.POST("/form", h.Form)
	return r
}

func doRequest(t *testing.T, r http.Handler, method, target, body string) envelope {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var res envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestTimelineDateEndpoint(t *testing.T) {
	r := newTimelineRouter()

	res := doRequest(t, r, http.MethodGet, "/api/timeline/date?start=2024-02-28&day=2", "")
	assert.Equal(t, 200, res.Code)
	assert.JSONEq(t, `{"date":"2024-03-01","growDay":2}`, string(res.Data))

	res = doRequest(t, r, http.MethodGet, "/api/timeline/date?start=2024-02-28&day=two", "")
	assert.Equal(t, 400, res.Code)
	assert.Contains(t, res.Message, "two")

	res = doRequest(t, r, http.MethodGet, "/api/timeline/date?start=2024-02-28", "")
	assert.Equal(t, 400, res.Code)
}

func TestTimelineDayEndpoint(t *testing.T) {
	r := newTimelineRouter()

	res := doRequest(t, r, http.MethodGet, "/api/timeline/day?start=2024-01-10&date=2024-01-01", "")
	assert.Equal(t, 200, res.Code)
	assert.JSONEq(t, `{"date":"2024-01-01","growDay":-9}`, string(res.Data))
}

func TestTimelineFormEndpoint(t *testing.T) {
	r := newTimelineRouter()
	body := `{"startDate":"2024-01-01","form":{"date":"2024-01-03T00:00:00Z","title":"t"},"edit":{"field":"day","value":"%s"}}`

	res := doRequest(t, r, http.MethodPost, "/api/timeline/form", strings.Replace(body, "%s", "5", 1))
	require.Equal(t, 200, res.Code)
	var form struct {
		Date    time.Time `json:"date"`
		GrowDay int       `json:"growDay"`
		Title   string    `json:"title"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &form))
	assert.Equal(t, 5, form.GrowDay)
	assert.True(t, form.Date.Equal(time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "t", form.Title)

	res = doRequest(t, r, http.MethodPost, "/api/timeline/form", strings.Replace(body, "%s", "5x", 1))
	require.Equal(t, 200, res.Code)
	require.NoError(t, json.Unmarshal(res.Data, &form))
	assert.Equal(t, 2, form.GrowDay)
}

func TestTimelineFormRejectsBadJSON(t *testing.T) {
	r := newTimelineRouter()

	tests := []struct {
		name string
		body string
	}{
		{"truncated", `{"startDate":"2024-01-01","form":{`},
		{"wrong type", `{"startDate":5}`},
		{"syntax", `{"startDate":"2024-01-01",}`},
		{"bad form date", `{"startDate":"2024-01-01","form":{"date":"yesterday"},"edit":{"field":"day","value":"1"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := doRequest(t, r, http.MethodPost, "/api/timeline/form", tt.body)
			assert.Equal(t, 400, res.Code)
			assert.Equal(t, "Json错误", res.Message)
		})
	}
}

func TestTimelineEndpointsAgreeOnLargeOffsets(t *testing.T) {
	r := newTimelineRouter()

	res := doRequest(t, r, http.MethodGet, "/api/timeline/date?start=2024-01-01&day=200000", "")
	require.Equal(t, 200, res.Code)
	assert.JSONEq(t, `{"date":"2571-08-01","growDay":200000}`, string(res.Data))

	res = doRequest(t, r, http.MethodGet, "/api/timeline/day?start=2024-01-01&date=2571-08-01", "")
	require.Equal(t, 200, res.Code)
	assert.JSONEq(t, `{"date":"2571-08-01","growDay":200000}`, string(res.Data))
}
