package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/gateway-client/internal/adapters/http/dto"
	"github.com/jsamuelsen/gateway-client/internal/domain"
	"github.com/jsamuelsen/gateway-client/internal/platform/logging"
	"github.com/jsamuelsen/gateway-client/internal/ports"
)

const (
	// HeaderIdempotencyKey carries the caller's idempotency key.
	HeaderIdempotencyKey = "Idempotency-Key"

	// HeaderIdempotentReplayed marks a response served from the ledger.
	HeaderIdempotentReplayed = "Idempotent-Replayed"

	maxIdempotencyKeyLength = 255
)

// IdempotencyMetrics counts ledger outcomes.
type IdempotencyMetrics struct {
	Replays   prometheus.Counter
	Conflicts prometheus.Counter
}

// NewIdempotencyMetrics registers the ledger counters on reg.
func NewIdempotencyMetrics(reg prometheus.Registerer) *IdempotencyMetrics {
	m := &IdempotencyMetrics{
		Replays: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sandbox",
			Name:      "idempotent_replays_total",
			Help:      "Responses replayed for a reused idempotency key and identical request.",
		}),
		Conflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sandbox",
			Name:      "idempotency_conflicts_total",
			Help:      "Requests rejected for reusing an idempotency key with different parameters.",
		}),
	}

	reg.MustRegister(m.Replays, m.Conflicts)

	return m
}

// Idempotency returns middleware that remembers mutating responses by their
// Idempotency-Key header. A request reusing a key gets the stored response
// when its method, path and body match the original, and a 400
// invalid_request conflict otherwise. Responses with a 5xx status are not
// stored, so the caller may resend. Requests without a key, and reads, pass
// through untouched.
func Idempotency(ledger ports.IdempotencyLedger, metrics *IdempotencyMetrics) gin.HandlerFunc {
	locks := newKeyLocks()

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if key == "" || !isMutating(c.Request.Method) {
			c.Next()
			return
		}

		if len(key) > maxIdempotencyKeyLength {
			dto.AbortWithError(c, domain.NewGatewayError(domain.KindInvalidRequest,
				"Idempotency-Key must be at most 255 characters."))
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				dto.AbortWithError(c, domain.NewGatewayError(domain.KindInvalidRequest, "Request body is too large."))
				return
			}

			dto.AbortWithError(c, err)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		fingerprint := requestFingerprint(c.Request.Method, c.Request.URL.Path, body)
		ctx := c.Request.Context()
		logger := logging.FromContext(ctx).With(slog.String("idempotency_key", key))

		unlock := locks.lock(key)
		defer unlock()

		rec, found, err := ledger.Load(ctx, key)
		if err != nil {
			dto.AbortWithError(c, err)
			return
		}

		if found {
			if rec.Fingerprint != fingerprint {
				metrics.Conflicts.Inc()
				logger.Warn("idempotency key reused with different parameters")
				dto.AbortWithError(c, domain.NewGatewayError(domain.KindInvalidRequest, domain.IdempotencyConflictMessage))
				return
			}

			metrics.Replays.Inc()
			logger.Debug("replaying stored response", slog.Int("status", rec.Status))
			c.Header(HeaderIdempotentReplayed, "true")
			c.Data(rec.Status, rec.ContentType, rec.Body)
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder

		c.Next()

		status := recorder.Status()
		if status >= http.StatusInternalServerError {
			return
		}

		err = ledger.Store(ctx, key, &ports.IdempotencyRecord{
			Fingerprint: fingerprint,
			Status:      status,
			ContentType: recorder.Header().Get("Content-Type"),
			Body:        recorder.body.Bytes(),
			CreatedAt:   time.Now().UTC(),
		})
		if err != nil {
			logger.Error("storing idempotency record failed", slog.Any("error", err))
		}
	}
}

// requestFingerprint identifies a request by method, path and exact body
// bytes. Two bodies that differ only in key order are different requests.
func requestFingerprint(method, path string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte{' '})
	h.Write([]byte(path))
	h.Write([]byte{'\n'})
	h.Write(body)

	return hex.EncodeToString(h.Sum(nil))
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// bodyRecorder copies everything written to the client.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// keyLocks serializes requests sharing an idempotency key so the second one
// sees the first one's record. An entry lives only while some request holds
// or waits for it.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

func newKeyLocks() *keyLocks {
	return &keyLocks{locks: make(map[string]*keyLock)}
}

func (k *keyLocks) lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
