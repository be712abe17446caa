package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/latest/USD", r.URL.Path)
		assert.Equal(t, "yes", r.URL.Query().Get("flag"))
		assert.Equal(t, "unit", r.Header.Get("X-Test"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rates":{"INR":83.25}}`))
	}))
	defer srv.Close()

	var out struct {
		Rates map[string]float64 `json:"rates"`
	}
	client := New(srv.URL, time.Second, "")
	resp, err := client.Get(context.Background(), "/v4/latest/USD",
		map[string]string{"flag": "yes"},
		map[string]string{"X-Test": "unit"},
		&out)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 83.25, out.Rates["INR"])
}

func TestRestyClient_GetTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := New(srv.URL, 20*time.Millisecond, "")
	_, err := client.Get(context.Background(), "/", nil, nil, &struct{}{})
	assert.Error(t, err)
}
