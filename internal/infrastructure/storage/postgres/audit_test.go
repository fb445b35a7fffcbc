package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradewind/internal/core/id"
	"tradewind/internal/core/security"
)

// execRecorder captures the SQL and arguments of every Exec call.
type execRecorder struct {
	sql  []string
	args [][]any
}

func (r *execRecorder) Exec(_ context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	r.sql = append(r.sql, sql)
	r.args = append(r.args, arguments)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (r *execRecorder) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (r *execRecorder) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func TestAuditLogSmallPayload(t *testing.T) {
	rec := &execRecorder{}
	svc, err := NewAuditService(rec)
	require.NoError(t, err)

	ctx := security.WithUserID(context.Background(), "user-42")
	entityID := id.New()

	err = svc.LogChange(ctx, "invoice", entityID, AuditActionCreate, map[string]any{
		"number": "INV-202609-0001",
	})
	require.NoError(t, err)

	require.Len(t, rec.args, 1)
	assert.Contains(t, rec.sql[0], "INSERT INTO sys_audit")

	args := rec.args[0]
	require.Len(t, args, 10)

	assert.False(t, id.IsNil(args[0].(id.ID)))
	assert.Equal(t, "invoice", args[1])
	assert.Equal(t, entityID, args[2])
	assert.Equal(t, AuditActionCreate, args[3])
	assert.Equal(t, "user-42", args[4])

	// Small payloads are stored as plain JSON
	changes := args[5].(json.RawMessage)
	assert.Contains(t, string(changes), "INV-202609-0001")
	assert.Nil(t, args[6])
	assert.Equal(t, CompressionNone, args[7])
}

func TestAuditLogCompressesLargePayload(t *testing.T) {
	rec := &execRecorder{}
	svc, err := NewAuditService(rec)
	require.NoError(t, err)

	// Build a payload well past the 10 KiB threshold
	payload := map[string]any{
		"description": string(bytes.Repeat([]byte("line item "), 2048)),
	}
	changesJSON, err := json.Marshal(payload)
	require.NoError(t, err)
	require.Greater(t, len(changesJSON), 10*1024)

	err = svc.Log(context.Background(), AuditEntry{
		EntityType: "invoice",
		EntityID:   id.New(),
		Action:     AuditActionUpdate,
		UserID:     "user-42",
		Changes:    changesJSON,
	})
	require.NoError(t, err)

	require.Len(t, rec.args, 1)
	args := rec.args[0]

	assert.Nil(t, args[5], "plain changes must be cleared once compressed")
	compressed := args[6].([]byte)
	require.NotEmpty(t, compressed)
	assert.Less(t, len(compressed), len(changesJSON))
	assert.Equal(t, CompressionZstd, args[7])

	decoder, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer decoder.Close()

	restored, err := decoder.DecodeAll(compressed, nil)
	require.NoError(t, err)
	assert.Equal(t, changesJSON, restored)
}

func TestAuditDiff(t *testing.T) {
	oldState := map[string]any{
		"name":   "Kilogram",
		"symbol": "kg",
		"factor": 1,
	}
	newState := map[string]any{
		"name":   "Kilogramme",
		"symbol": "kg",
		"scale":  3,
	}

	changes := Diff(oldState, newState)

	assert.Equal(t, map[string]any{"old": "Kilogram", "new": "Kilogramme"}, changes["name"])
	assert.Equal(t, map[string]any{"old": 1, "new": nil}, changes["factor"])
	assert.Equal(t, map[string]any{"old": nil, "new": 3}, changes["scale"])
	assert.NotContains(t, changes, "symbol")
}
