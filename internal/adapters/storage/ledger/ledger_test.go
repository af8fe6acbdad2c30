package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/gateway-client/internal/ports"
)

var (
	_ ports.IdempotencyLedger = (*Memory)(nil)
	_ ports.IdempotencyLedger = (*Bolt)(nil)
	_ ports.HealthChecker     = (*Memory)(nil)
	_ ports.HealthChecker     = (*Bolt)(nil)
)

func openTestBolt(t *testing.T) *Bolt {
	t.Helper()

	b, err := OpenBolt(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	return b
}

func TestLedgers(t *testing.T) {
	ledgers := map[string]func(t *testing.T) ports.IdempotencyLedger{
		"memory": func(*testing.T) ports.IdempotencyLedger { return NewMemory() },
		"bolt":   func(t *testing.T) ports.IdempotencyLedger { return openTestBolt(t) },
	}

	for name, newLedger := range ledgers {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			l := newLedger(t)

			_, found, err := l.Load(ctx, "key-1")
			require.NoError(t, err)
			assert.False(t, found)

			rec := &ports.IdempotencyRecord{
				Fingerprint: "abc",
				Status:      200,
				ContentType: "application/json",
				Body:        []byte(`{"id":"dp_1"}`),
				CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			}
			require.NoError(t, l.Store(ctx, "key-1", rec))

			got, found, err := l.Load(ctx, "key-1")
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, rec.Fingerprint, got.Fingerprint)
			assert.Equal(t, rec.Status, got.Status)
			assert.Equal(t, rec.ContentType, got.ContentType)
			assert.JSONEq(t, string(rec.Body), string(got.Body))
			assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))

			_, found, err = l.Load(ctx, "key-2")
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	body := []byte(`{"a":1}`)
	require.NoError(t, m.Store(ctx, "k", &ports.IdempotencyRecord{Body: body}))
	body[0] = 'X'

	got, _, err := m.Load(ctx, "k")
	require.NoError(t, err)
	got.Body[1] = 'Y'

	again, _, err := m.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(again.Body))
	assert.Equal(t, 1, m.Len())
}

func TestBolt_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "ledger.db")

	b, err := OpenBolt(path)
	require.NoError(t, err)
	require.NoError(t, b.Store(ctx, "k", &ports.IdempotencyRecord{Fingerprint: "fp", Status: 201}))
	require.NoError(t, b.Close())

	reopened, err := OpenBolt(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, found, err := reopened.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "fp", got.Fingerprint)
	assert.Equal(t, 201, got.Status)
}

func TestBolt_Check(t *testing.T) {
	b := openTestBolt(t)

	assert.Equal(t, "idempotency-ledger", b.Name())
	require.NoError(t, b.Check(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, b.Check(ctx), context.Canceled)
}

func TestBolt_CanceledContext(t *testing.T) {
	b := openTestBolt(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := b.Load(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, b.Store(ctx, "k", &ports.IdempotencyRecord{}), context.Canceled)
}
