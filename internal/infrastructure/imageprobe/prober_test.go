package imageprobe

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/canvasclip/internal/infrastructure/cache"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	pngData := samplePNG(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/cat.png", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngData)
	})
	mux.HandleFunc("/mislabelled", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(pngData)
	})
	mux.HandleFunc("/logo.svg", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
		_, _ = w.Write([]byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))
	})
	mux.HandleFunc("/page", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestProber_HTTPReferences(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	p := NewProber(Config{AllowInsecureHTTP: true, Timeout: time.Second}, nil)
	ctx := context.Background()

	assert.True(t, p.Loadable(ctx, srv.URL+"/cat.png"))
	assert.True(t, p.Loadable(ctx, srv.URL+"/mislabelled"), "content is sniffed, not the header")
	assert.True(t, p.Loadable(ctx, srv.URL+"/logo.svg"))
	assert.False(t, p.Loadable(ctx, srv.URL+"/page"))
	assert.False(t, p.Loadable(ctx, srv.URL+"/missing"))
}

func TestProber_SurroundingWhitespaceIsIgnored(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	p := NewProber(Config{AllowInsecureHTTP: true, Timeout: time.Second}, nil)
	ctx := context.Background()

	assert.True(t, p.Loadable(ctx, srv.URL+"/cat.png\n"))
	assert.True(t, p.Loadable(ctx, "  "+srv.URL+"/cat.png\t"))
	assert.False(t, p.Loadable(ctx, srv.URL+"/cat.png and more"))
	assert.False(t, p.Loadable(ctx, " \n "))
}

func TestProber_RefusesInsecureHTTPByDefault(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	p := NewProber(Config{}, nil)

	assert.False(t, p.Loadable(context.Background(), srv.URL+"/cat.png"))
	assert.Zero(t, hits.Load())
}

func TestProber_PlainTextIsNotAnImage(t *testing.T) {
	p := NewProber(Config{AllowInsecureHTTP: true}, nil)
	ctx := context.Background()

	for _, text := range []string{
		"",
		"hello world",
		"print(1)\nprint(2)",
		"x=1",
		"ftp://example.com/a.png",
		"https://",
	} {
		assert.False(t, p.Loadable(ctx, text), text)
	}
}

func TestProber_DataURIs(t *testing.T) {
	p := NewProber(Config{}, nil)
	ctx := context.Background()
	encoded := base64.StdEncoding.EncodeToString(samplePNG(t))

	assert.True(t, p.Loadable(ctx, "data:image/png;base64,"+encoded))
	assert.True(t, p.Loadable(ctx, "data:;base64,"+encoded))
	assert.True(t, p.Loadable(ctx, "data:image/svg+xml,%3Csvg%20xmlns%3D%22http%3A%2F%2Fwww.w3.org%2F2000%2Fsvg%22%2F%3E"))
	assert.False(t, p.Loadable(ctx, "data:text/plain;base64,aGVsbG8="))
	assert.False(t, p.Loadable(ctx, "data:image/png;base64,!!!"))
	assert.False(t, p.Loadable(ctx, "data:image/png"))
}

func TestProber_CachesVerdicts(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	p := NewProber(Config{AllowInsecureHTTP: true}, cache.NewLRU[string, bool](8))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, p.Loadable(ctx, srv.URL+"/cat.png"))
		assert.False(t, p.Loadable(ctx, srv.URL+"/page"))
	}

	assert.Equal(t, int32(2), hits.Load())
}

func TestProber_CancelledProbeIsNotCached(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	lru := cache.NewLRU[string, bool](8)
	p := NewProber(Config{AllowInsecureHTTP: true}, lru)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, p.Loadable(ctx, srv.URL+"/cat.png"))
	assert.Equal(t, 0, lru.Len())
	assert.True(t, p.Loadable(context.Background(), srv.URL+"/cat.png"))
}

func TestCacheKey(t *testing.T) {
	long := "data:image/png;base64," + strings.Repeat("A", 1<<16)

	assert.Len(t, cacheKey(long), 64)
	assert.Equal(t, cacheKey("https://a/b.png"), cacheKey("https://a/b.png"))
	assert.NotEqual(t, cacheKey("https://a/b.png"), cacheKey("https://a/c.png"))
}
