package execution

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trv/internal/config"
	"trv/internal/domain"
)

type fakeSource struct {
	fail string
}

func (f *fakeSource) Extract(path string) ([]domain.Identifier, error) {
	if path == f.fail {
		return nil, errors.New("boom")
	}
	return []domain.Identifier{
		{Function: "f", Name: path + "#1", File: path},
		{Function: "f", Name: path + "#2", File: path},
	}, nil
}

type recordingProgress struct {
	mu       sync.Mutex
	updates  int
	lastDone int
	finished bool
}

func (p *recordingProgress) Update(done, found int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updates++
	if done > p.lastDone {
		p.lastDone = done
	}
}

func (p *recordingProgress) Finish() {
	p.finished = true
}

func files(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("f%02d_test.go", i)
	}
	return out
}

func TestWorkerPool_Execute(t *testing.T) {
	cfg := config.New()
	cfg.Processors = 3
	pool := NewWorkerPool(cfg, &fakeSource{}, NewRoundRobinScheduler(), nil)
	progress := &recordingProgress{}
	pool.SetProgress(progress)

	in := files(10)
	ids, _, err := pool.Execute(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, ids, 20)

	for i, id := range ids {
		assert.Equal(t, i, id.Position)
		assert.Equal(t, in[i/2], id.File, "file order must be preserved")
	}
	assert.Equal(t, 10, progress.updates)
	assert.Equal(t, 10, progress.lastDone)
	assert.True(t, progress.finished)
}

func TestWorkerPool_Execute_Error(t *testing.T) {
	cfg := config.New()
	cfg.Processors = 2
	in := files(6)
	pool := NewWorkerPool(cfg, &fakeSource{fail: in[3]}, NewRoundRobinScheduler(), nil)

	ids, _, err := pool.Execute(context.Background(), in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Nil(t, ids)
}

func TestWorkerPool_Execute_Empty(t *testing.T) {
	pool := NewWorkerPool(config.New(), &fakeSource{}, NewRoundRobinScheduler(), nil)

	ids, d, err := pool.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Zero(t, d)
}

func TestRoundRobinScheduler_Schedule(t *testing.T) {
	s := NewRoundRobinScheduler()

	assert.Equal(t, [][]int{{0, 3}, {1, 4}, {2}}, s.Schedule(5, 3))
	assert.Equal(t, [][]int{{0}, {1}}, s.Schedule(2, 8), "no idle workers")
	assert.Equal(t, [][]int{{0, 1, 2}}, s.Schedule(3, 0))
}
