package ui

import "trv/internal/domain"

// Viewer displays a validation report in an interactive TUI
type Viewer interface {
	View(report *domain.ValidationReport) error
}
