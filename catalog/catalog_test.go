package catalog_test

import (
	"encoding/json"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/catalog"
	"github.com/katalvlaran/lvpuzzle/problem"
)

func sample(id int, slug string, d problem.Difficulty, tags ...string) problem.Problem {
	return problem.Problem{
		Meta:   problem.Meta{ID: id, Slug: slug, Title: slug, Difficulty: d, Tags: tags},
		Solver: problem.Func0(func() int { return id }),
	}
}

func TestRegister(t *testing.T) {
	c := catalog.New()
	require.NoError(t, c.Register(sample(1, "one", problem.Easy, "array"), sample(2, "two", problem.Hard)))
	assert.Equal(t, 2, c.Len())

	tests := []struct {
		name string
		ps   []problem.Problem
		want error
	}{
		{"duplicate id", []problem.Problem{sample(1, "uno", problem.Easy)}, catalog.ErrDuplicateID},
		{"duplicate slug", []problem.Problem{sample(3, "one", problem.Easy)}, catalog.ErrDuplicateSlug},
		{"duplicate within batch", []problem.Problem{sample(4, "four", problem.Easy), sample(4, "vier", problem.Easy)}, catalog.ErrDuplicateID},
		{"invalid meta", []problem.Problem{sample(0, "zero", problem.Easy)}, problem.ErrInvalidMeta},
		{"no solver", []problem.Problem{{Meta: problem.Meta{ID: 5, Slug: "five", Title: "Five", Difficulty: problem.Easy}}}, problem.ErrNoSolver},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, c.Register(tc.ps...), tc.want)
		})
	}
	assert.Equal(t, 2, c.Len(), "failed batches add nothing")
	assert.Panics(t, func() { c.MustRegister(sample(1, "one", problem.Easy)) })
}

func TestLookup(t *testing.T) {
	c := catalog.New()
	c.MustRegister(sample(1, "two-sum", problem.Easy), sample(15, "3sum", problem.Medium))

	for _, key := range []string{"1", " 1 ", "two-sum", "Two-Sum"} {
		p, err := c.Lookup(key)
		require.NoError(t, err, key)
		assert.Equal(t, 1, p.ID)
	}
	p, err := c.Lookup("3sum")
	require.NoError(t, err)
	assert.Equal(t, 15, p.ID)

	_, err = c.Lookup("2")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	_, err = c.Lookup("three-sum")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, ok := c.ByID(15)
	assert.True(t, ok)
	_, ok = c.BySlug("nope")
	assert.False(t, ok)
}

func TestListAndTags(t *testing.T) {
	c := catalog.New()
	c.MustRegister(
		sample(30, "c", problem.Hard, "dp"),
		sample(10, "a", problem.Easy, "array", "dp"),
		sample(20, "b", problem.Easy, "array"),
	)

	ids := func(ms []problem.Meta) []int {
		out := make([]int, len(ms))
		for i, m := range ms {
			out[i] = m.ID
		}
		return out
	}
	assert.Equal(t, []int{10, 20, 30}, ids(c.List()))
	assert.Equal(t, []int{10, 30}, ids(c.List(catalog.WithTag("DP"))))
	assert.Equal(t, []int{10, 20}, ids(c.List(catalog.WithDifficulty(problem.Easy))))
	assert.Equal(t, []int{10}, ids(c.List(catalog.WithTag("dp"), catalog.WithDifficulty(problem.Easy))))
	assert.Empty(t, c.List(catalog.WithTag("graph")))

	assert.Equal(t, map[string]int{"array": 2, "dp": 2}, c.Tags())
}

func TestConcurrentAccess(t *testing.T) {
	c := catalog.New()
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			_ = c.Register(sample(id, "p-"+strconv.Itoa(id), problem.Easy))
		}(i)
		go func() {
			defer wg.Done()
			_ = c.List()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, c.Len())
}

func TestDefault(t *testing.T) {
	c := catalog.Default()
	assert.Same(t, c, catalog.Default())

	total := 0
	for name, family := range catalog.Families {
		ps := family()
		require.NotEmpty(t, ps, name)
		total += len(ps)
		for _, p := range ps {
			assert.NoError(t, p.Meta.Validate(), "%s: %s", name, p.Slug)
			assert.NotEmpty(t, p.Tags, "%s: %s", name, p.Slug)
			got, err := c.Lookup(p.Slug)
			require.NoError(t, err)
			assert.Equal(t, p.ID, got.ID)
		}
	}
	assert.Equal(t, total, c.Len())

	p, err := c.Lookup("1")
	require.NoError(t, err)
	got, err := p.Solve([]json.RawMessage{json.RawMessage(`[2,7,11,15]`), json.RawMessage(`9`)})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)

	assert.Contains(t, c.Tags(), "dp")
	assert.NotEmpty(t, c.List(catalog.WithTag("concurrency")))
}
