package execution

import (
	"context"
	"time"

	"trv/internal/domain"
)

// Executor extracts identifiers from test files
type Executor interface {
	Execute(ctx context.Context, files []string) ([]domain.Identifier, time.Duration, error)
}

// Source reads the identifiers of a single file
type Source interface {
	Extract(filePath string) ([]domain.Identifier, error)
}

// Progress receives extraction progress
type Progress interface {
	Update(filesDone, identifiersFound int)
	Finish()
}
