package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"trv/internal/domain"
)

// Save writes the report to the configured JSON output file.
func (s *JSONStorage) Save(report *domain.ValidationReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := s.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads the last report from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.ValidationReport, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var report domain.ValidationReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &report, nil
}
