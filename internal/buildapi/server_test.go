package buildapi

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aquachain/gembuild/buildinfo"
	"gitlab.com/aquachain/gembuild/common/log"
)

func init() {
	log.ResetForTesting()
}

var gemini = buildinfo.BuildInfo{
	Release:      "12.24.2020",
	ReleaseYear:  2020,
	ReleaseMonth: 12,
	ReleaseDay:   24,
	Revision:     "12.24.2020-14-gb77c425-dirty",
	Date:         "20/01/2021 22:54 UTC",
	Compiler:     "arm-none-eabi-gcc 10.2.1 20201103 (release)",
	Machine:      "stargirl@stargirls-mbp.lan",
}

func do(t *testing.T, h http.Handler, method, path string, mod func(r *http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Host = "localhost"
	if mod != nil {
		mod(req)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestInfo(t *testing.T) {
	h := NewHandler(gemini, DefaultConfig)
	rec := do(t, h, http.MethodGet, PathInfo, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeJSON, rec.Header().Get("content-type"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "12.24.2020", got["release"])
	assert.Equal(t, float64(2020), got["release_year"])
	assert.Equal(t, float64(12), got["release_month"])
	assert.Equal(t, float64(24), got["release_day"])
	assert.Equal(t, "12.24.2020-14-gb77c425-dirty", got["revision"])
	assert.Equal(t, "stargirl@stargirls-mbp.lan", got["machine"])
}

func TestSummary(t *testing.T) {
	h := NewHandler(gemini, DefaultConfig)
	rec := do(t, h, http.MethodGet, PathSummary, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeText, rec.Header().Get("content-type"))
	assert.Equal(t, gemini.String()+"\n", rec.Body.String())
}

func TestReadOnly(t *testing.T) {
	h := NewHandler(gemini, DefaultConfig)
	for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		rec := do(t, h, m, PathInfo, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, m)
	}
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/nope", nil).Code)
}

func TestVirtualHosts(t *testing.T) {
	h := NewHandler(gemini, DefaultConfig)
	rebind := func(r *http.Request) { r.Host = "evil.example:8547" }
	assert.Equal(t, http.StatusForbidden, do(t, h, http.MethodGet, PathInfo, rebind).Code)

	ip := func(r *http.Request) { r.Host = "127.0.0.1:8547" }
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, PathInfo, ip).Code)

	cfg := DefaultConfig
	cfg.VirtualHosts = []string{"*"}
	assert.Equal(t, http.StatusOK, do(t, NewHandler(gemini, cfg), http.MethodGet, PathInfo, rebind).Code)
}

func TestCORS(t *testing.T) {
	cfg := DefaultConfig
	cfg.CORSOrigins = []string{"https://tools.example"}
	h := NewHandler(gemini, cfg)
	rec := do(t, h, http.MethodGet, PathInfo, func(r *http.Request) {
		r.Header.Set("Origin", "https://tools.example")
	})
	assert.Equal(t, "https://tools.example", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = do(t, NewHandler(gemini, DefaultConfig), http.MethodGet, PathInfo, func(r *http.Request) {
		r.Header.Set("Origin", "https://tools.example")
	})
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServe(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := New(gemini, DefaultConfig)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, srv, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + PathSummary)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, gemini.String()+"\n", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}
