package idgen

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/canvasclip/internal/domain/entity"
)

func frozen(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestTimestamp_BatchIsSequential(t *testing.T) {
	at := time.UnixMilli(1_700_000_000_000)
	g := NewTimestamp(frozen(at))

	ids := g.Batch(3)

	assert.Equal(t, []entity.CardID{"1700000000000", "1700000000001", "1700000000002"}, ids)
}

func TestTimestamp_BatchesInSameMillisecondDoNotCollide(t *testing.T) {
	g := NewTimestamp(frozen(time.UnixMilli(1000)))

	first := g.Batch(5)
	second := g.Batch(5)

	seen := map[entity.CardID]bool{}
	for _, id := range append(first, second...) {
		assert.False(t, seen[id], "duplicate %s", id)
		seen[id] = true
	}
	assert.Equal(t, entity.CardID("1005"), second[0])
}

func TestTimestamp_ClockGoingBackwards(t *testing.T) {
	now := time.UnixMilli(5000)
	g := NewTimestamp(func() time.Time { return now })

	a := g.Batch(1)[0]
	now = time.UnixMilli(4000)
	b := g.Batch(1)[0]

	ai, _ := strconv.ParseInt(string(a), 10, 64)
	bi, _ := strconv.ParseInt(string(b), 10, 64)
	assert.Greater(t, bi, ai)
}

func TestTimestamp_ConcurrentBatchesAreUnique(t *testing.T) {
	g := NewTimestamp(time.Now)

	var mu sync.Mutex
	seen := map[entity.CardID]bool{}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := g.Batch(10)
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				assert.False(t, seen[id], "duplicate %s", id)
				seen[id] = true
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 200)
}

func TestBatch_ZeroOrNegative(t *testing.T) {
	assert.Empty(t, NewTimestamp(time.Now).Batch(0))
	assert.Empty(t, NewUUIDv7().Batch(-1))
}

func TestUUIDv7_Unique(t *testing.T) {
	ids := NewUUIDv7().Batch(100)

	require.Len(t, ids, 100)
	seen := map[entity.CardID]bool{}
	for _, id := range ids {
		assert.Len(t, string(id), 36)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestNew(t *testing.T) {
	g, err := New(SchemeTimestamp)
	require.NoError(t, err)
	assert.IsType(t, &Timestamp{}, g)

	g, err = New("UUID7")
	require.NoError(t, err)
	assert.IsType(t, &UUIDv7{}, g)

	_, err = New("snowflake")
	assert.Error(t, err)
}
