package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/chronodesk/timetracking-api/internal/core/domain"
	"github.com/chronodesk/timetracking-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher removes deleted upload blobs from disk off the request path.
// Jobs are sharded by file id so removals for the same file stay ordered.
type Dispatcher struct {
	workers []chan domain.StoredFile
	blobs   ports.BlobStore
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, blobs ports.BlobStore, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.StoredFile, numWorkers),
		blobs:   blobs,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.StoredFile, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a file's blob to the worker responsible for it. Non-blocking
// up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(file domain.StoredFile) {
	d.workers[d.shardIndex(file.ID)] <- file
}

func (d *Dispatcher) shardIndex(id string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.StoredFile) {
	for {
		select {
		case <-ctx.Done():
			return
		case file, ok := <-ch:
			if !ok {
				return
			}
			if err := d.blobs.Remove(ctx, file.Path); err != nil {
				d.log.Error().Err(err).
					Str("file_id", file.ID).
					Int("worker_id", id).
					Msg("blob removal failed")
			}
		}
	}
}
