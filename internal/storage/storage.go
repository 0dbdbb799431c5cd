package storage

import (
	"trv/internal/config"
	"trv/internal/domain"
)

// Storage persists and loads the last validation report (e.g. for the viewer).
type Storage interface {
	Save(report *domain.ValidationReport) error
	Load() (*domain.ValidationReport, error)
}

// JSONStorage stores the report in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// Path returns the file the report is stored in
func (s *JSONStorage) Path() string {
	return s.cfg.GetOutputPath()
}
