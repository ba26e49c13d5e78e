// Package imageprobe decides whether pasted text is a loadable image reference.
package imageprobe

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	// Decoders available to image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/crypto/blake2b"

	"github.com/bnema/canvasclip/internal/application/port"
	"github.com/bnema/canvasclip/internal/logging"
)

const (
	defaultTimeout  = 3 * time.Second
	defaultMaxBytes = 10 << 20
	svgMediaType    = "image/svg+xml"
)

// Config controls how references are fetched.
type Config struct {
	Timeout time.Duration
	// MaxBytes caps how much of a response is read while decoding.
	MaxBytes int64
	// AllowInsecureHTTP permits plain http:// references.
	AllowInsecureHTTP bool
}

// Prober implements port.ImageProbe over HTTP(S) and data: URIs.
type Prober struct {
	client *http.Client
	cfg    Config
	cache  port.Cache[string, bool]
}

// NewProber creates a Prober. cache may be nil to disable result caching.
func NewProber(cfg Config, cache port.Cache[string, bool]) *Prober {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = defaultMaxBytes
	}
	return &Prober{
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
		cache:  cache,
	}
}

// Loadable implements port.ImageProbe.
func (p *Prober) Loadable(ctx context.Context, ref string) bool {
	// A reference is a single token once surrounding whitespace is gone;
	// whitespace inside it means prose.
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.ContainsAny(ref, " \t\r\n") {
		return false
	}

	key := cacheKey(ref)
	if p.cache != nil {
		if ok, hit := p.cache.Get(key); hit {
			return ok
		}
	}

	log := logging.FromContext(ctx)
	ok, err := p.probe(ctx, ref)
	if err != nil {
		log.Debug().Err(err).Str("ref", truncate(ref)).Msg("not an image reference")
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// Do not remember a verdict the caller interrupted.
		return false
	}
	if p.cache != nil {
		p.cache.Set(key, ok)
	}
	return ok
}

// cacheKey is a fixed-size digest of ref. Inline data URIs can be megabytes.
func cacheKey(ref string) string {
	sum := blake2b.Sum256([]byte(ref))
	return hex.EncodeToString(sum[:])
}

func (p *Prober) probe(ctx context.Context, ref string) (bool, error) {
	if strings.HasPrefix(ref, "data:") {
		return probeDataURI(ref)
	}

	u, err := url.Parse(ref)
	if err != nil {
		return false, err
	}
	switch u.Scheme {
	case "https":
	case "http":
		if !p.cfg.AllowInsecureHTTP {
			return false, fmt.Errorf("insecure http reference refused")
		}
	default:
		return false, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return false, fmt.Errorf("missing host")
	}
	return p.fetch(ctx, u.String())
}

func (p *Prober) fetch(ctx context.Context, ref string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, http.NoBody)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "image/*")

	resp, err := p.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("status %d", resp.StatusCode)
	}

	if mediaType(resp.Header.Get("Content-Type")) == svgMediaType {
		return true, nil
	}

	if _, _, err := image.DecodeConfig(io.LimitReader(resp.Body, p.cfg.MaxBytes)); err != nil {
		return false, fmt.Errorf("decode: %w", err)
	}
	return true, nil
}

// probeDataURI decodes data:[<mediatype>][;base64],<data> locally.
func probeDataURI(ref string) (bool, error) {
	meta, data, found := strings.Cut(strings.TrimPrefix(ref, "data:"), ",")
	if !found {
		return false, fmt.Errorf("malformed data uri")
	}

	isBase64 := strings.HasSuffix(meta, ";base64")
	meta = strings.TrimSuffix(meta, ";base64")

	typ := mediaType(meta)
	if typ != "" && !strings.HasPrefix(typ, "image/") {
		return false, fmt.Errorf("data uri media type %q is not an image", typ)
	}

	var raw []byte
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return false, fmt.Errorf("data uri payload: %w", err)
		}
		raw = decoded
	} else {
		unescaped, err := url.PathUnescape(data)
		if err != nil {
			return false, fmt.Errorf("data uri payload: %w", err)
		}
		raw = []byte(unescaped)
	}

	if typ == svgMediaType {
		return bytes.Contains(raw, []byte("<svg")), nil
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(raw)); err != nil {
		return false, fmt.Errorf("decode: %w", err)
	}
	return true, nil
}

func mediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	typ, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return typ
}

func truncate(s string) string {
	const limit = 80
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
