package discovery

import (
	"path/filepath"

	"trv/internal/domain"
)

// QualifyFunctions prefixes the function of each identifier with its package
// directory relative to root when the same function name is extracted from
// more than one directory, so TestParse in two packages forms two groups.
// Functions found in a single directory keep their bare name.
func QualifyFunctions(ids []domain.Identifier, root string) []domain.Identifier {
	dirs := make(map[string]map[string]bool)
	for _, id := range ids {
		if dirs[id.Function] == nil {
			dirs[id.Function] = make(map[string]bool)
		}
		dirs[id.Function][filepath.Dir(id.File)] = true
	}

	out := make([]domain.Identifier, len(ids))
	for i, id := range ids {
		if len(dirs[id.Function]) > 1 {
			id.Function = packageDir(root, id.File) + "/" + id.Function
		}
		out[i] = id
	}
	return out
}

func packageDir(root, file string) string {
	dir := filepath.Dir(file)
	if rel, err := filepath.Rel(root, dir); err == nil {
		dir = rel
	}
	return filepath.ToSlash(dir)
}
