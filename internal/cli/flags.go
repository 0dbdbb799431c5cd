package cli

import "trv/internal/config"

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	Processors  int
	TestPath    string
	NameFilter  string
	Scope       string
	ZeroPadding bool
	PadWidth    int
	JSON        bool
	NoSave      bool
	Save        bool
	Open        bool
	Group       bool
	Start       int
	Verbose     bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectPath: f.ProjectPath,
		Processors:  f.Processors,
		TestPath:    f.TestPath,
		NameFilter:  f.NameFilter,
		Scope:       f.Scope,
		ZeroPadding: f.ZeroPadding,
		PadWidth:    f.PadWidth,
		JSON:        f.JSON,
		NoSave:      f.NoSave,
		Save:        f.Save,
		Open:        f.Open,
		Group:       f.Group,
		Start:       f.Start,
		Verbose:     f.Verbose,
	}
}
