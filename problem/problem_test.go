package problem_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpuzzle/problem"
)

func raw(parts ...string) []json.RawMessage {
	out := make([]json.RawMessage, len(parts))
	for i, p := range parts {
		out[i] = json.RawMessage(p)
	}

	return out
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]problem.Difficulty{
		"Easy":     problem.Easy,
		" medium ": problem.Medium,
		"HARD":     problem.Hard,
	} {
		got, err := problem.ParseDifficulty(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := problem.ParseDifficulty("brutal")
	assert.ErrorIs(t, err, problem.ErrInvalidMeta)
}

func TestDifficulty_JSONRoundTrip(t *testing.T) {
	m := problem.Meta{ID: 1, Slug: "two-sum", Title: "Two Sum", Difficulty: problem.Easy}
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"difficulty":"Easy"`)

	var back problem.Meta
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, m, back)
}

func TestMeta_Validate(t *testing.T) {
	ok := problem.Meta{ID: 1392, Slug: "longest-happy-prefix", Title: "Longest Happy Prefix", Difficulty: problem.Hard}
	assert.NoError(t, ok.Validate())

	cases := map[string]problem.Meta{
		"zero id":     {ID: 0, Slug: "a", Title: "A", Difficulty: problem.Easy},
		"bad slug":    {ID: 1, Slug: "Two Sum", Title: "A", Difficulty: problem.Easy},
		"empty title": {ID: 1, Slug: "a", Title: "  ", Difficulty: problem.Easy},
		"no level":    {ID: 1, Slug: "a", Title: "A"},
	}
	for name, m := range cases {
		assert.ErrorIs(t, m.Validate(), problem.ErrInvalidMeta, name)
	}
}

func TestMeta_HasTagAndString(t *testing.T) {
	m := problem.Meta{ID: 1, Slug: "two-sum", Title: "Two Sum", Difficulty: problem.Easy, Tags: []string{"array", "hash-table"}}
	assert.True(t, m.HasTag("Hash-Table"))
	assert.False(t, m.HasTag("graph"))
	assert.Equal(t, "1. Two Sum [Easy]", m.String())
}

func TestFunc2(t *testing.T) {
	add := problem.Func2(func(a []int, k int) int {
		s := k
		for _, v := range a {
			s += v
		}

		return s
	})

	got, err := add(raw(`[1,2,3]`, `4`))
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	_, err = add(raw(`[1,2,3]`))
	assert.ErrorIs(t, err, problem.ErrArity)

	_, err = add(raw(`"x"`, `4`))
	assert.ErrorIs(t, err, problem.ErrDecode)
}

func TestProblem_NoSolver(t *testing.T) {
	_, err := problem.Problem{Meta: problem.Meta{Slug: "x"}}.Solve(nil)
	assert.ErrorIs(t, err, problem.ErrNoSolver)
}

type counter struct{ n int }

func TestDesign(t *testing.T) {
	solve := problem.Design(func(args []json.RawMessage) (problem.Instance, error) {
		start, err := problem.Decode[int](args, 0)
		if err != nil {
			return nil, err
		}
		c := &counter{n: start}

		return problem.Methods{
			"add": problem.Action1(func(d int) { c.n += d }),
			"get": problem.Func0(func() int { return c.n }),
		}, nil
	})

	got, err := solve(raw(`["Counter","add","get","add","get"]`, `[[5],[2],[],[-1],[]]`))
	require.NoError(t, err)
	assert.Equal(t, []any{nil, nil, 7, nil, 6}, got)

	_, err = solve(raw(`["Counter","mul"]`, `[[0],[2]]`))
	assert.ErrorIs(t, err, problem.ErrUnknownOp)

	_, err = solve(raw(`["Counter","get"]`, `[[0]]`))
	assert.ErrorIs(t, err, problem.ErrArity)
}
