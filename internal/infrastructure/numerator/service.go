// Package numerator implements document auto-numbering on top of the
// per-tenant sys_sequences table.
package numerator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"tradewind/internal/core/numerator"
	"tradewind/internal/core/tenant"
)

// Querier is the minimal database surface the generator needs.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type cachedRange struct {
	current int64
	max     int64
}

// Service generates document numbers from sys_sequences rows keyed by
// document type and reset period. In Database-per-Tenant mode the querier
// is the tenant pool taken from context; cached ranges are segregated by
// tenant ID so a shared instance never mixes counters across tenants.
type Service struct {
	// staticQuerier is used for single-tenant setups and tests
	staticQuerier Querier
	useContext    bool

	cacheMu sync.Mutex
	ranges  map[string]*cachedRange
}

// New creates a generator bound to a fixed querier.
// Use for single-tenant or testing scenarios.
func New(querier Querier) *Service {
	return &Service{
		staticQuerier: querier,
		ranges:        make(map[string]*cachedRange),
	}
}

// NewFromContext creates a generator that resolves the tenant pool from
// context on every call.
func NewFromContext() *Service {
	return &Service{
		useContext: true,
		ranges:     make(map[string]*cachedRange),
	}
}

var _ numerator.Generator = (*Service)(nil)

func (s *Service) getQuerier(ctx context.Context) Querier {
	if s.useContext {
		// Sequence updates run on the pool, outside business transactions,
		// so a rolled-back document never holds a sequence lock.
		return tenant.MustGetPool(ctx)
	}
	return s.staticQuerier
}

// GetNextNumber generates the next document number for the period.
// Pattern: PREFIX-YYYYMM-NNNN (e.g. INV-202609-0001).
func (s *Service) GetNextNumber(ctx context.Context, cfg numerator.Config, opts *numerator.Options, period time.Time) (string, error) {
	if s == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}
	if opts == nil {
		opts = numerator.DefaultOptions()
	}

	key := buildKey(cfg, period)

	var num int64
	var err error
	switch opts.Strategy {
	case numerator.StrategyCached:
		num, err = s.getNextCached(ctx, key, s.cacheKey(ctx, key), opts)
	default:
		num, err = s.getNextStrict(ctx, key)
	}
	if err != nil {
		return "", err
	}

	return formatNumber(cfg, period, num), nil
}

// cacheKey prepends the tenant ID so the in-memory range map stays
// isolated per tenant when the Service instance is shared.
func (s *Service) cacheKey(ctx context.Context, key string) string {
	if s.useContext {
		if tenantID := tenant.GetTenantID(ctx); tenantID != "" {
			return tenantID + ":" + key
		}
	}
	return key
}

// getNextStrict reserves exactly one number with an atomic upsert.
func (s *Service) getNextStrict(ctx context.Context, key string) (int64, error) {
	var num int64
	err := s.getQuerier(ctx).QueryRow(ctx, `
		INSERT INTO sys_sequences (key, current_val)
		VALUES ($1, 1)
		ON CONFLICT (key) DO UPDATE SET current_val = sys_sequences.current_val + 1
		RETURNING current_val
	`, key).Scan(&num)
	if err != nil {
		return 0, fmt.Errorf("strict next: %w", err)
	}
	return num, nil
}

// getNextCached serves numbers from an in-memory range, reserving a new
// block from the database when the range is exhausted. current_val always
// holds the last number handed out, so the reserved block is
// (newMax-size, newMax].
func (s *Service) getNextCached(ctx context.Context, dbKey, cacheKey string, opts *numerator.Options) (int64, error) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	rng, exists := s.ranges[cacheKey]
	if !exists {
		rng = &cachedRange{}
		s.ranges[cacheKey] = rng
	}

	if rng.current >= rng.max {
		size := opts.RangeSize
		if size <= 0 {
			size = 50
		}

		var newMax int64
		err := s.getQuerier(ctx).QueryRow(ctx, `
			INSERT INTO sys_sequences (key, current_val)
			VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET current_val = sys_sequences.current_val + $2
			RETURNING current_val
		`, dbKey, size).Scan(&newMax)
		if err != nil {
			return 0, fmt.Errorf("reserve range: %w", err)
		}

		rng.current = newMax - size
		rng.max = newMax
	}

	rng.current++
	return rng.current, nil
}

// SetNextNumber overwrites the counter for the period and drops any
// cached range for it.
func (s *Service) SetNextNumber(ctx context.Context, cfg numerator.Config, period time.Time, value int64) error {
	key := buildKey(cfg, period)

	var result int64
	err := s.getQuerier(ctx).QueryRow(ctx, `
		INSERT INTO sys_sequences (key, current_val)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET current_val = $2
		RETURNING current_val
	`, key, value).Scan(&result)

	s.cacheMu.Lock()
	delete(s.ranges, s.cacheKey(ctx, key))
	s.cacheMu.Unlock()

	return err
}

// buildKey derives the sequence key from the prefix and reset period.
// A monthly reset yields keys like "INV_2026_09", so each month starts a
// fresh counter row.
func buildKey(cfg numerator.Config, period time.Time) string {
	switch cfg.ResetPeriod {
	case "month":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006_01"))
	case "year":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006"))
	default:
		return cfg.Prefix
	}
}

func formatNumber(cfg numerator.Config, period time.Time, num int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 4
	}

	switch cfg.ResetPeriod {
	case "month":
		return fmt.Sprintf("%s-%s-%0*d", cfg.Prefix, period.Format("200601"), padWidth, num)
	case "year":
		return fmt.Sprintf("%s-%s-%0*d", cfg.Prefix, period.Format("2006"), padWidth, num)
	default:
		return fmt.Sprintf("%s-%0*d", cfg.Prefix, padWidth, num)
	}
}

// ParseNumber extracts the counter from a formatted number, i.e. the
// digits after the last dash. Returns -1 if parsing fails.
func ParseNumber(formatted string) int64 {
	idx := strings.LastIndex(formatted, "-")
	if idx < 0 || idx == len(formatted)-1 {
		return -1
	}
	num, err := strconv.ParseInt(formatted[idx+1:], 10, 64)
	if err != nil {
		return -1
	}
	return num
}
