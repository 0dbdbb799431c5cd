package discovery

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"trv/internal/domain"
)

func TestQualifyFunctions(t *testing.T) {
	root := filepath.Join("/src", "project")
	at := func(rel string) string { return filepath.Join(root, rel) }

	tests := []struct {
		name string
		ids  []domain.Identifier
		want []string
	}{
		{
			name: "same function in two packages",
			ids: []domain.Identifier{
				{Function: "Parse", Name: "001_positive", File: at("a/parse_test.go")},
				{Function: "Parse", Name: "001_positive", File: at("b/parse_test.go")},
			},
			want: []string{"a/Parse", "b/Parse"},
		},
		{
			name: "same function in two files of one package",
			ids: []domain.Identifier{
				{Function: "Parse", Name: "001_positive", File: at("a/parse_test.go")},
				{Function: "Parse", Name: "002_negative", File: at("a/parse_more_test.go")},
			},
			want: []string{"Parse", "Parse"},
		},
		{
			name: "nested and root packages",
			ids: []domain.Identifier{
				{Function: "New", Name: "001_positive", File: at("new_test.go")},
				{Function: "New", Name: "001_positive", File: at("internal/store/new_test.go")},
				{Function: "Get", Name: "001_positive", File: at("internal/store/get_test.go")},
			},
			want: []string{"./New", "internal/store/New", "Get"},
		},
		{
			name: "empty",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QualifyFunctions(tt.ids, root)
			functions := make([]string, 0, len(got))
			for _, id := range got {
				functions = append(functions, id.Function)
			}
			assert.Equal(t, tt.want, functions)
		})
	}
}

func TestQualifyFunctions_KeepsInput(t *testing.T) {
	ids := []domain.Identifier{
		{Function: "Parse", File: "a/x_test.go"},
		{Function: "Parse", File: "b/x_test.go"},
	}
	QualifyFunctions(ids, ".")
	assert.Equal(t, "Parse", ids[0].Function)
}
