package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scanner scans for test files in a directory
type Scanner struct {
	skipDirs map[string]bool
	suffixes []string
}

// NewScanner creates a new Scanner that skips the given directory names and
// keeps files ending with one of suffixes
func NewScanner(skipDirs []string, suffixes []string) *Scanner {
	skipMap := make(map[string]bool, len(skipDirs))
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap, suffixes: suffixes}
}

// Scan finds all test files under root, in lexical path order
func (s *Scanner) Scan(root string) ([]string, error) {
	var testFiles []string

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", root)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if s.isTestFile(d.Name()) {
			testFiles = append(testFiles, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.Strings(testFiles)
	return testFiles, nil
}

func (s *Scanner) isTestFile(name string) bool {
	for _, suffix := range s.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
