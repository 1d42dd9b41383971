package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/simbirgo/rental-api/internal/core/ports"
	"github.com/simbirgo/rental-api/internal/infrastructure/db/redis"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Auditor writes issued-token records to the Redis token log off the request
// path, so sign-in latency never depends on Redis. Records are sharded by
// username onto a fixed set of workers, keeping per-account ordering.
type Auditor struct {
	workers []chan ports.TokenAuditRecord
	log     *redis.TokenLog
	logger  zerolog.Logger
}

// NewAuditor creates an Auditor with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditor(numWorkers int, log *redis.TokenLog, logger zerolog.Logger) *Auditor {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	a := &Auditor{
		workers: make([]chan ports.TokenAuditRecord, numWorkers),
		log:     log,
		logger:  logger,
	}
	for i := range a.workers {
		a.workers[i] = make(chan ports.TokenAuditRecord, channelBuffer)
	}
	return a
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (a *Auditor) Start(ctx context.Context) {
	for i, ch := range a.workers {
		go a.runWorker(ctx, i, ch)
	}
}

// Record enqueues an issued-token record. Non-blocking: if the responsible
// worker's buffer is full the record is dropped, since the audit trail is
// best-effort and must never stall token issuance.
func (a *Auditor) Record(rec ports.TokenAuditRecord) {
	select {
	case a.workers[a.shardIndex(rec.Username)] <- rec:
	default:
		a.logger.Warn().Str("token_id", rec.TokenID).Msg("token audit buffer full, record dropped")
	}
}

// shardIndex maps a username deterministically to a worker index.
func (a *Auditor) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32()) % len(a.workers)
}

func (a *Auditor) runWorker(ctx context.Context, id int, ch <-chan ports.TokenAuditRecord) {
	for {
		select {
		case <-ctx.Done():
			return
		case rec, ok := <-ch:
			if !ok {
				return
			}
			if err := a.log.Record(ctx, rec.TokenID, rec.Username, rec.Role, rec.ExpiresAt); err != nil {
				a.logger.Error().Err(err).
					Str("token_id", rec.TokenID).
					Int("worker_id", id).
					Msg("failed to record issued token")
			}
		}
	}
}
