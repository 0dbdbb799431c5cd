package parser

import (
	"io"

	"trv/internal/domain"
)

// Parser turns an external listing of test names into identifiers
type Parser interface {
	Parse(r io.Reader) ([]domain.Identifier, error)
}
