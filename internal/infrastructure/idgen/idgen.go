// Package idgen provides card id generators.
package idgen

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/canvasclip/internal/application/port"
	"github.com/bnema/canvasclip/internal/domain/entity"
)

// Scheme names a generator.
type Scheme string

const (
	// SchemeTimestamp issues unix milliseconds plus a per-item offset.
	SchemeTimestamp Scheme = "timestamp"
	// SchemeUUIDv7 issues time-ordered UUIDs.
	SchemeUUIDv7 Scheme = "uuid7"
)

// New returns the generator for scheme.
func New(scheme Scheme) (port.IDGenerator, error) {
	switch Scheme(strings.ToLower(string(scheme))) {
	case "", SchemeTimestamp:
		return NewTimestamp(time.Now), nil
	case SchemeUUIDv7:
		return NewUUIDv7(), nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", scheme)
	}
}

// Timestamp issues ids of the form <unix millis + index>. The base never
// goes backwards and never reuses a value handed out earlier, so batches
// issued within the same millisecond still do not collide.
type Timestamp struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewTimestamp creates a Timestamp generator reading time from now.
func NewTimestamp(now func() time.Time) *Timestamp {
	return &Timestamp{now: now}
}

// Batch implements port.IDGenerator.
func (g *Timestamp) Batch(n int) []entity.CardID {
	if n <= 0 {
		return []entity.CardID{}
	}

	g.mu.Lock()
	base := g.now().UnixMilli()
	if base <= g.last {
		base = g.last + 1
	}
	g.last = base + int64(n) - 1
	g.mu.Unlock()

	ids := make([]entity.CardID, n)
	for i := range ids {
		ids[i] = entity.CardID(strconv.FormatInt(base+int64(i), 10))
	}
	return ids
}

// UUIDv7 issues RFC 9562 version 7 UUIDs.
type UUIDv7 struct{}

// NewUUIDv7 creates a UUIDv7 generator.
func NewUUIDv7() *UUIDv7 {
	return &UUIDv7{}
}

// Batch implements port.IDGenerator.
func (UUIDv7) Batch(n int) []entity.CardID {
	if n <= 0 {
		return []entity.CardID{}
	}

	ids := make([]entity.CardID, n)
	for i := range ids {
		id, err := uuid.NewV7()
		if err != nil {
			// Only fails when the random source does; v4 keeps ids unique.
			id = uuid.New()
		}
		ids[i] = entity.CardID(id.String())
	}
	return ids
}
