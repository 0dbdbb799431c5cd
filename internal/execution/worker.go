package execution

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trv/internal/config"
	"trv/internal/domain"
)

// WorkerPool extracts identifiers from many files in parallel
type WorkerPool struct {
	config    *config.Config
	source    Source
	scheduler Scheduler
	progress  Progress
	logger    *zap.Logger
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, source Source, scheduler Scheduler, logger *zap.Logger) *WorkerPool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkerPool{
		config:    cfg,
		source:    source,
		scheduler: scheduler,
		logger:    logger,
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Execute extracts identifiers from files using up to config.Processors workers.
// The result keeps the order of files, whatever order workers finish in. The
// first extraction error stops the remaining workers.
func (wp *WorkerPool) Execute(ctx context.Context, files []string) ([]domain.Identifier, time.Duration, error) {
	if len(files) == 0 {
		return nil, 0, nil
	}

	startTime := time.Now()
	perFile := make([][]domain.Identifier, len(files))
	buckets := wp.scheduler.Schedule(len(files), wp.config.Processors)

	var mu sync.Mutex
	var filesDone, found int

	g, ctx := errgroup.WithContext(ctx)
	for i, bucket := range buckets {
		bucket := bucket
		workerID := i + 1
		g.Go(func() error {
			for _, idx := range bucket {
				if err := ctx.Err(); err != nil {
					return err
				}
				ids, err := wp.source.Extract(files[idx])
				if err != nil {
					return fmt.Errorf("worker %d: %w", workerID, err)
				}
				perFile[idx] = ids

				mu.Lock()
				filesDone++
				found += len(ids)
				if wp.progress != nil {
					wp.progress.Update(filesDone, found)
				}
				mu.Unlock()

				wp.logger.Debug("extracted",
					zap.Int("worker", workerID),
					zap.String("file", files[idx]),
					zap.Int("identifiers", len(ids)),
				)
			}
			return nil
		})
	}

	err := g.Wait()
	if wp.progress != nil {
		wp.progress.Finish()
	}
	if err != nil {
		return nil, time.Since(startTime), err
	}

	var all []domain.Identifier
	for _, ids := range perFile {
		for _, id := range ids {
			id.Position = len(all)
			all = append(all, id)
		}
	}
	return all, time.Since(startTime), nil
}
