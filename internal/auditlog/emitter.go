package auditlog

import (
	"context"
	"sync"
	"time"

	"eventia/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var Em *Emitter

type Config struct {
	Buffer     int
	BatchSize  int
	FlushEvery time.Duration
}

var (
	defaultConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 2 * time.Second,
	}
	fastConfig = Config{
		Buffer:     1000,
		BatchSize:  50,
		FlushEvery: 50 * time.Millisecond,
	}
)

// Emitter decouples audit writes from the request path: entries are buffered
// and batch-inserted in the background, so a slow or failing log write can
// never fail the mutation it records.
type Emitter struct {
	coll *mongo.Collection
	buf  chan models.AuditLogEntry
	cfg  Config

	wg        sync.WaitGroup
	onceClose sync.Once

	InsertOne  func(context.Context, models.AuditLogEntry) error
	InsertMany func(context.Context, []models.AuditLogEntry) error
}

func NewEmitter(coll *mongo.Collection, deployment string) *Emitter {
	return NewEmitterWithConfig(coll, selectConfig(deployment))
}

func NewEmitterWithConfig(coll *mongo.Collection, cfg Config) *Emitter {
	e := &Emitter{
		coll: coll,
		buf:  make(chan models.AuditLogEntry, cfg.Buffer),
		cfg:  cfg,
	}

	e.InsertOne = func(ctx context.Context, entry models.AuditLogEntry) error {
		_, err := e.coll.InsertOne(ctx, entry)
		return err
	}

	e.InsertMany = func(ctx context.Context, entries []models.AuditLogEntry) error {
		docs := make([]interface{}, len(entries))
		for i, entry := range entries {
			docs[i] = entry
		}

		_, err := e.coll.InsertMany(ctx, docs)
		return err
	}

	e.wg.Add(1)
	go e.worker()

	return e
}

func selectConfig(deployment string) Config {
	switch deployment {
	case "test":
		return fastConfig
	default:
		return defaultConfig
	}
}

func (e *Emitter) Close() {
	e.onceClose.Do(func() {
		close(e.buf)
		e.wg.Wait()
	})
}

func (e *Emitter) worker() {
	defer e.wg.Done()

	batch := make([]models.AuditLogEntry, 0, e.cfg.BatchSize)
	timer := time.NewTimer(e.cfg.FlushEvery)

	defer timer.Stop()

	flush := func() {
		if len(batch) == 0 {
			timer.Reset(e.cfg.FlushEvery)
			return
		}

		ctx, cancel := context.WithTimeout(
			context.Background(),
			2*time.Second,
		)

		_ = e.InsertMany(ctx, batch)

		cancel()

		batch = batch[:0]
		timer.Reset(e.cfg.FlushEvery)
	}

	for {
		select {
		case entry, ok := <-e.buf:
			if !ok {
				flush()
				return
			}

			batch = append(batch, entry)

			if len(batch) >= e.cfg.BatchSize {
				flush()
			}
		case <-timer.C:
			flush()
		}
	}
}
