package numerator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradewind/internal/core/numerator"
)

type mockRow struct {
	val int64
	err error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = m.val
		}
	}
	return nil
}

// mockQuerier simulates the sys_sequences upsert: every call advances the
// counter by the increment argument (1 for strict calls).
type mockQuerier struct {
	mu       sync.Mutex
	counters map[string]int64
	queries  int
	lastKey  string
}

func newMockQuerier() *mockQuerier {
	return &mockQuerier{counters: make(map[string]int64)}
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.queries++
	key, _ := args[0].(string)
	m.lastKey = key

	var increment int64 = 1
	if len(args) > 1 {
		if v, ok := args[1].(int64); ok {
			increment = v
		}
	}
	m.counters[key] += increment
	return &mockRow{val: m.counters[key]}
}

var period = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func TestGetNextNumberStrict(t *testing.T) {
	q := newMockQuerier()
	svc := New(q)
	ctx := context.Background()
	cfg := numerator.DefaultConfig("INV")

	num, err := svc.GetNextNumber(ctx, cfg, nil, period)
	require.NoError(t, err)
	assert.Equal(t, "INV-202609-0001", num)

	num, err = svc.GetNextNumber(ctx, cfg, nil, period)
	require.NoError(t, err)
	assert.Equal(t, "INV-202609-0002", num)

	assert.Equal(t, "INV_2026_09", q.lastKey)
}

func TestGetNextNumberMonthlyReset(t *testing.T) {
	q := newMockQuerier()
	svc := New(q)
	ctx := context.Background()
	cfg := numerator.DefaultConfig("SO")

	num, err := svc.GetNextNumber(ctx, cfg, nil, period)
	require.NoError(t, err)
	assert.Equal(t, "SO-202609-0001", num)

	// next month gets its own sequence row, counter starts over
	october := period.AddDate(0, 1, 0)
	num, err = svc.GetNextNumber(ctx, cfg, nil, october)
	require.NoError(t, err)
	assert.Equal(t, "SO-202610-0001", num)
}

func TestGetNextNumberCached(t *testing.T) {
	q := newMockQuerier()
	svc := New(q)
	ctx := context.Background()
	cfg := numerator.DefaultConfig("DN")

	opts := &numerator.Options{
		Strategy:  numerator.StrategyCached,
		RangeSize: 10,
	}

	// first call reserves 1..10 in one round trip
	num, err := svc.GetNextNumber(ctx, cfg, opts, period)
	require.NoError(t, err)
	assert.Equal(t, "DN-202609-0001", num)
	assert.Equal(t, 1, q.queries)
	assert.Equal(t, int64(10), q.counters["DN_2026_09"])

	// subsequent calls inside the range never touch the database
	for i := 2; i <= 10; i++ {
		num, err = svc.GetNextNumber(ctx, cfg, opts, period)
		require.NoError(t, err)
	}
	assert.Equal(t, "DN-202609-0010", num)
	assert.Equal(t, 1, q.queries)

	// range exhausted, the next call reserves 11..20
	num, err = svc.GetNextNumber(ctx, cfg, opts, period)
	require.NoError(t, err)
	assert.Equal(t, "DN-202609-0011", num)
	assert.Equal(t, 2, q.queries)
	assert.Equal(t, int64(20), q.counters["DN_2026_09"])
}

func TestBuildKeyResetPeriods(t *testing.T) {
	assert.Equal(t, "INV_2026_09", buildKey(numerator.Config{Prefix: "INV", ResetPeriod: "month"}, period))
	assert.Equal(t, "INV_2026", buildKey(numerator.Config{Prefix: "INV", ResetPeriod: "year"}, period))
	assert.Equal(t, "INV", buildKey(numerator.Config{Prefix: "INV", ResetPeriod: "never"}, period))
}

func TestParseNumber(t *testing.T) {
	assert.Equal(t, int64(42), ParseNumber("INV-202609-0042"))
	assert.Equal(t, int64(7), ParseNumber("INV-0007"))
	assert.Equal(t, int64(-1), ParseNumber("garbage"))
	assert.Equal(t, int64(-1), ParseNumber("INV-"))
	assert.Equal(t, int64(-1), ParseNumber("INV-202609-00x2"))
}
