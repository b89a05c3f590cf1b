package problem

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Difficulty is the difficulty label carried by every problem statement.
type Difficulty int

const (
	// Easy problems.
	Easy Difficulty = iota + 1
	// Medium problems.
	Medium
	// Hard problems.
	Hard
)

// String returns "Easy", "Medium", "Hard", or "Unknown".
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of Easy, Medium, Hard.
func (d Difficulty) Valid() bool { return d >= Easy && d <= Hard }

// ParseDifficulty parses a difficulty label, ignoring case and surrounding spaces.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}

	return 0, fmt.Errorf("%w: difficulty %q", ErrInvalidMeta, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: difficulty %d", ErrInvalidMeta, int(d))
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v

	return nil
}

// Meta is the problem statement header: number, slug, title, difficulty and tags.
type Meta struct {
	ID         int        `json:"id" yaml:"id"`
	Slug       string     `json:"slug" yaml:"slug"`
	Title      string     `json:"title" yaml:"title"`
	Difficulty Difficulty `json:"difficulty" yaml:"difficulty"`
	Tags       []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks that the metadata is well formed:
// positive ID, kebab-case slug, non-empty title and a known difficulty.
func (m Meta) Validate() error {
	switch {
	case m.ID <= 0:
		return fmt.Errorf("%w: id %d must be positive", ErrInvalidMeta, m.ID)
	case !slugPattern.MatchString(m.Slug):
		return fmt.Errorf("%w: slug %q is not kebab-case", ErrInvalidMeta, m.Slug)
	case strings.TrimSpace(m.Title) == "":
		return fmt.Errorf("%w: problem %d has an empty title", ErrInvalidMeta, m.ID)
	case !m.Difficulty.Valid():
		return fmt.Errorf("%w: problem %d has difficulty %d", ErrInvalidMeta, m.ID, int(m.Difficulty))
	}

	return nil
}

// HasTag reports whether the problem carries tag (case-insensitive).
func (m Meta) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}

	return false
}

// String renders the header the way solution files open: "1. Two Sum [Easy]".
func (m Meta) String() string {
	return fmt.Sprintf("%d. %s [%s]", m.ID, m.Title, m.Difficulty)
}

// Solver is the single entry point of a puzzle.
// It receives positional JSON arguments and returns a JSON-encodable value.
type Solver func(args []json.RawMessage) (any, error)

// Problem binds a statement to its entry point.
//
// Unordered marks answers that are collections whose order is irrelevant
// (for example the triplets of 3Sum); judges compare them as multisets.
// Nested extends that to the lists inside the answer, as in Group Anagrams
// where neither the groups nor the words within a group have an order.
type Problem struct {
	Meta
	Unordered bool
	Nested    bool
	Solver    Solver
}

// Solve runs the entry point on args.
func (p Problem) Solve(args []json.RawMessage) (any, error) {
	if p.Solver == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSolver, p.Slug)
	}

	return p.Solver(args)
}
