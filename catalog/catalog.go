// Package catalog indexes the puzzle corpus by number and slug.
//
// A Catalog is safe for concurrent use. Default returns a catalog holding
// every puzzle of every family package; tests and tools that want a subset
// build their own with New and Register.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/lvpuzzle/problem"
)

// Sentinel errors returned by the catalog.
var (
	// ErrDuplicateID indicates a second problem with an already registered number.
	ErrDuplicateID = errors.New("catalog: duplicate problem id")

	// ErrDuplicateSlug indicates a second problem with an already registered slug.
	ErrDuplicateSlug = errors.New("catalog: duplicate problem slug")

	// ErrNotFound indicates a lookup key that matches no problem.
	ErrNotFound = errors.New("catalog: problem not found")
)

// Catalog is a registry of problems keyed by ID and slug.
type Catalog struct {
	mu     sync.RWMutex
	byID   map[int]problem.Problem
	bySlug map[string]int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{
		byID:   make(map[int]problem.Problem),
		bySlug: make(map[string]int),
	}
}

// Register adds problems to the catalog. The batch is all-or-nothing: if any
// problem is invalid or collides with a registered one (or another one in the
// batch), nothing is added.
func (c *Catalog) Register(ps ...problem.Problem) error {
	for _, p := range ps {
		if err := p.Meta.Validate(); err != nil {
			return err
		}
		if p.Solver == nil {
			return fmt.Errorf("%w: %s", problem.ErrNoSolver, p.Slug)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make(map[int]bool, len(ps))
	slugs := make(map[string]bool, len(ps))
	for _, p := range ps {
		if _, ok := c.byID[p.ID]; ok || ids[p.ID] {
			return fmt.Errorf("%w: %d (%s)", ErrDuplicateID, p.ID, p.Slug)
		}
		if _, ok := c.bySlug[p.Slug]; ok || slugs[p.Slug] {
			return fmt.Errorf("%w: %s", ErrDuplicateSlug, p.Slug)
		}
		ids[p.ID] = true
		slugs[p.Slug] = true
	}
	for _, p := range ps {
		c.byID[p.ID] = p
		c.bySlug[p.Slug] = p.ID
	}

	return nil
}

// MustRegister is Register that panics on error, for static wiring.
func (c *Catalog) MustRegister(ps ...problem.Problem) {
	if err := c.Register(ps...); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
}

// ByID returns the problem numbered id.
func (c *Catalog) ByID(id int) (problem.Problem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.byID[id]

	return p, ok
}

// BySlug returns the problem with the given slug.
func (c *Catalog) BySlug(slug string) (problem.Problem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.bySlug[slug]
	if !ok {
		return problem.Problem{}, false
	}

	return c.byID[id], true
}

// Lookup resolves key as a problem number ("1") or a slug ("two-sum").
// Surrounding blanks are ignored and slugs match case-insensitively.
func (c *Catalog) Lookup(key string) (problem.Problem, error) {
	key = strings.TrimSpace(key)
	if id, err := strconv.Atoi(key); err == nil {
		if p, ok := c.ByID(id); ok {
			return p, nil
		}
		return problem.Problem{}, fmt.Errorf("%w: #%d", ErrNotFound, id)
	}
	if p, ok := c.BySlug(strings.ToLower(key)); ok {
		return p, nil
	}

	return problem.Problem{}, fmt.Errorf("%w: %q", ErrNotFound, key)
}

// Filter selects problems in List.
type Filter func(problem.Meta) bool

// WithTag keeps problems carrying tag.
func WithTag(tag string) Filter {
	return func(m problem.Meta) bool { return m.HasTag(tag) }
}

// WithDifficulty keeps problems of difficulty d.
func WithDifficulty(d problem.Difficulty) Filter {
	return func(m problem.Meta) bool { return m.Difficulty == d }
}

// List returns the metadata of every problem passing all filters, by ID.
func (c *Catalog) List(filters ...Filter) []problem.Meta {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]problem.Meta, 0, len(c.byID))
next:
	for _, p := range c.byID {
		for _, keep := range filters {
			if !keep(p.Meta) {
				continue next
			}
		}
		out = append(out, p.Meta)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Tags returns how many problems carry each tag.
func (c *Catalog) Tags() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]int)
	for _, p := range c.byID {
		for _, t := range p.Tags {
			out[t]++
		}
	}

	return out
}

// Len returns the number of registered problems.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.byID)
}
