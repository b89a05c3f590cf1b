package dp

import "errors"

var (
	// ErrScriptNeedsFullMatrix indicates that an edit script was requested in RollingArray mode.
	ErrScriptNeedsFullMatrix = errors.New("dp: edit script requires MemoryMode=FullMatrix")

	// ErrNegativeInput indicates a negative count or bound.
	ErrNegativeInput = errors.New("dp: input must be non-negative")
)

// MemoryMode controls how MinDistance stores its table.
type MemoryMode int

const (
	// FullMatrix stores all (n+1)×(m+1) cells and supports the edit script.
	FullMatrix MemoryMode = iota

	// RollingArray keeps two rows, O(min(n, m)) memory, no edit script.
	RollingArray
)

// Op is one step of an edit script.
type Op byte

// Edit operations. Keep copies a character unchanged.
const (
	Keep    Op = '='
	Replace Op = '~'
	Insert  Op = '+'
	Delete  Op = '-'
)

// EditOptions configures MinDistanceWith.
type EditOptions struct {
	MemoryMode MemoryMode
	Script     bool
}

// EditOption is a functional option for MinDistanceWith.
type EditOption func(*EditOptions)

// WithMemoryMode selects FullMatrix or RollingArray storage.
func WithMemoryMode(m MemoryMode) EditOption {
	return func(o *EditOptions) { o.MemoryMode = m }
}

// WithScript asks MinDistanceWith to return the edit script.
func WithScript() EditOption {
	return func(o *EditOptions) { o.Script = true }
}

// DefaultEditOptions returns RollingArray without a script.
func DefaultEditOptions() EditOptions {
	return EditOptions{MemoryMode: RollingArray}
}

// MinDistance returns the Levenshtein distance between word1 and word2.
func MinDistance(word1, word2 string) int {
	d, _, _ := MinDistanceWith(word1, word2)

	return d
}

// MinDistanceWith computes the Levenshtein distance and, if requested, one
// optimal edit script turning word1 into word2.
//
// Recurrence over D[i][j] = distance(word1[:i], word2[:j]):
//
//	D[i][0] = i, D[0][j] = j
//	D[i][j] = D[i-1][j-1]                                  if word1[i-1] == word2[j-1]
//	        = 1 + min(D[i-1][j-1], D[i][j-1], D[i-1][j])    otherwise
//
// Complexity: O(n·m) time; O(n·m) or O(min(n,m)) memory by mode.
func MinDistanceWith(word1, word2 string, opts ...EditOption) (int, []Op, error) {
	cfg := DefaultEditOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Script && cfg.MemoryMode != FullMatrix {
		return 0, nil, ErrScriptNeedsFullMatrix
	}

	if cfg.MemoryMode == RollingArray {
		return rollingDistance(word1, word2), nil, nil
	}

	table := fullTable(word1, word2)
	d := table[len(word1)][len(word2)]
	if !cfg.Script {
		return d, nil, nil
	}

	return d, backtrack(table, word1, word2), nil
}

func rollingDistance(a, b string) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1]
			} else {
				cur[j] = 1 + min(prev[j-1], cur[j-1], prev[j])
			}
		}
		prev, cur = cur, prev
	}

	return prev[len(b)]
}

func fullTable(a, b string) [][]int {
	t := make([][]int, len(a)+1)
	for i := range t {
		t[i] = make([]int, len(b)+1)
		t[i][0] = i
	}
	for j := range t[0] {
		t[0][j] = j
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				t[i][j] = t[i-1][j-1]
			} else {
				t[i][j] = 1 + min(t[i-1][j-1], t[i][j-1], t[i-1][j])
			}
		}
	}

	return t
}

// backtrack walks from (n, m) to (0, 0), preferring diagonal moves.
func backtrack(t [][]int, a, b string) []Op {
	var rev []Op
	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && t[i][j] == t[i-1][j-1]:
			rev = append(rev, Keep)
			i, j = i-1, j-1
		case i > 0 && j > 0 && t[i][j] == t[i-1][j-1]+1:
			rev = append(rev, Replace)
			i, j = i-1, j-1
		case j > 0 && t[i][j] == t[i][j-1]+1:
			rev = append(rev, Insert)
			j--
		default:
			rev = append(rev, Delete)
			i--
		}
	}
	for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
		rev[l], rev[r] = rev[r], rev[l]
	}

	return rev
}
