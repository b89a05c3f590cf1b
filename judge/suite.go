package judge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Case is one input/output assertion.
//
// Unordered overrides the problem's own setting when present. WantError marks
// inputs the puzzle must reject; Want is ignored for those.
type Case struct {
	Name      string `json:"name" yaml:"name" validate:"required"`
	Args      []any  `json:"args" yaml:"args"`
	Want      any    `json:"want" yaml:"want"`
	Unordered *bool  `json:"unordered,omitempty" yaml:"unordered,omitempty"`
	WantError bool   `json:"want_error,omitempty" yaml:"want_error,omitempty"`
}

// Suite is a list of cases for one problem, named by number or slug.
type Suite struct {
	Problem string `json:"problem" yaml:"problem" validate:"required"`
	Cases   []Case `json:"cases" yaml:"cases" validate:"dive"`

	// Path is the file the suite was loaded from, if any.
	Path string `json:"-" yaml:"-"`
}

var validate = validator.New()

// Validate checks that the suite names a problem and holds uniquely named cases.
func (s *Suite) Validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("%w: %s", ErrNoCases, s.label())
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s: %s", ErrInvalidSuite, s.label(), describe(err))
	}
	seen := make(map[string]bool, len(s.Cases))
	for _, c := range s.Cases {
		if seen[c.Name] {
			return fmt.Errorf("%w: %s: duplicate case %q", ErrInvalidSuite, s.label(), c.Name)
		}
		seen[c.Name] = true
	}

	return nil
}

func (s *Suite) label() string {
	if s.Path != "" {
		return s.Path
	}
	if s.Problem != "" {
		return s.Problem
	}

	return "<suite>"
}

// describe flattens validator errors into "field: rule" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}

	return strings.Join(parts, "; ")
}

// Format is a suite file encoding.
type Format int

const (
	// YAML suites: .yaml, .yml.
	YAML Format = iota + 1
	// JSONC suites: .json, .jsonc; comments and trailing commas allowed.
	JSONC
)

// FormatOf maps a file name to its suite format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json", ".jsonc":
		return JSONC, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// ParseSuite decodes and validates a suite. Cases without a name are named
// by their position, "#1" for the first.
func ParseSuite(data []byte, f Format) (*Suite, error) {
	var s Suite
	switch f {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSuite, err)
		}
	case JSONC:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSuite, err)
		}
	default:
		return nil, fmt.Errorf("%w: format %d", ErrUnsupportedFormat, int(f))
	}

	for i := range s.Cases {
		if s.Cases[i].Name == "" {
			s.Cases[i].Name = fmt.Sprintf("#%d", i+1)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// LoadSuite reads one suite file.
func LoadSuite(path string) (*Suite, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s, err := ParseSuite(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path

	return s, nil
}

// LoadDir reads every suite file directly inside dir, sorted by file name.
// Files with other extensions are skipped.
func LoadDir(dir string) ([]*Suite, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatOf(e.Name()); err == nil {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no suite files in %s", ErrNoCases, dir)
	}
	sort.Strings(names)

	suites := make([]*Suite, 0, len(names))
	for _, name := range names {
		s, err := LoadSuite(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}

	return suites, nil
}

// Load reads each path as a suite file or, for directories, with LoadDir.
func Load(paths ...string) ([]*Suite, error) {
	var suites []*Suite
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			ss, err := LoadDir(p)
			if err != nil {
				return nil, err
			}
			suites = append(suites, ss...)
			continue
		}
		s, err := LoadSuite(p)
		if err != nil {
			return nil, err
		}
		suites = append(suites, s)
	}
	if len(suites) == 0 {
		return nil, ErrNoCases
	}

	return suites, nil
}
