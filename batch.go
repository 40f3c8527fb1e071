package stroke

import (
	"errors"
	"fmt"

	"github.com/gogpu/stroke/internal/parallel"
)

// Batch strokes many outlines concurrently with one configuration.
//
// Each worker owns a Stroker that is rewound between outlines, so a Batch
// allocates border storage once per worker rather than once per outline.
// Batch is safe for concurrent use.
type Batch struct {
	cfg      Config
	pool     *parallel.Pool
	strokers []*Stroker
}

// NewBatch starts a Batch with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewBatch(cfg Config, workers int) (*Batch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pool := parallel.NewPool(workers)
	b := &Batch{
		cfg:      cfg,
		pool:     pool,
		strokers: make([]*Stroker, pool.Workers()),
	}
	for i := range b.strokers {
		b.strokers[i] = &Stroker{cfg: cfg, borders: [2]border{newBorder(), newBorder()}}
	}
	return b, nil
}

// Config returns the configuration the Batch strokes with.
func (b *Batch) Config() Config {
	return b.cfg
}

// Stroke strokes every outline and returns the results in input order.
// A nil entry in outlines yields a nil result. Outlines that fail leave a
// nil result too; their errors are joined, each prefixed with the index
// of the outline, and the other results are still returned.
func (b *Batch) Stroke(outlines []*Outline, open bool) ([]*Outline, error) {
	results := make([]*Outline, len(outlines))
	errs := make([]error, len(outlines))

	err := b.pool.Run(len(outlines), func(worker, i int) {
		o := outlines[i]
		if o == nil {
			return
		}
		s := b.strokers[worker]
		s.Rewind()
		if err := s.ParseOutline(o, open); err != nil {
			errs[i] = fmt.Errorf("outline %d: %w", i, err)
			return
		}
		results[i], errs[i] = s.Export()
		if errs[i] != nil {
			errs[i] = fmt.Errorf("outline %d: %w", i, errs[i])
		}
	})
	if err != nil {
		return results, err
	}

	failed := 0
	for _, e := range errs {
		if e != nil {
			failed++
		}
	}
	log := Logger()
	log.Debug("stroke: batch done", "outlines", len(outlines), "failed", failed, "workers", b.pool.Workers())
	if failed > 0 {
		log.Warn("stroke: batch outlines dropped", "failed", failed)
	}
	return results, errors.Join(errs...)
}

// Close stops the workers. Stroke fails once the Batch is closed.
func (b *Batch) Close() {
	b.pool.Close()
}
