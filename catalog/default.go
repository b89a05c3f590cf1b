package catalog

import (
	"sync"

	"github.com/katalvlaran/lvpuzzle/arrays"
	"github.com/katalvlaran/lvpuzzle/concurrency"
	"github.com/katalvlaran/lvpuzzle/dp"
	"github.com/katalvlaran/lvpuzzle/graphs"
	"github.com/katalvlaran/lvpuzzle/heaps"
	"github.com/katalvlaran/lvpuzzle/intervals"
	"github.com/katalvlaran/lvpuzzle/lists"
	"github.com/katalvlaran/lvpuzzle/problem"
	"github.com/katalvlaran/lvpuzzle/search"
	"github.com/katalvlaran/lvpuzzle/stacks"
	"github.com/katalvlaran/lvpuzzle/text"
	"github.com/katalvlaran/lvpuzzle/trees"
	"github.com/katalvlaran/lvpuzzle/tries"
	"github.com/katalvlaran/lvpuzzle/unionfind"
)

// Families lists the Problems function of every puzzle package.
var Families = map[string]func() []problem.Problem{
	"arrays":      arrays.Problems,
	"concurrency": concurrency.Problems,
	"dp":          dp.Problems,
	"graphs":      graphs.Problems,
	"heaps":       heaps.Problems,
	"intervals":   intervals.Problems,
	"lists":       lists.Problems,
	"search":      search.Problems,
	"stacks":      stacks.Problems,
	"text":        text.Problems,
	"trees":       trees.Problems,
	"tries":       tries.Problems,
	"unionfind":   unionfind.Problems,
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the shared catalog of the whole corpus, built on first use.
// It panics if two families register the same number or slug.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c := New()
		for _, family := range Families {
			c.MustRegister(family()...)
		}
		defaultCat = c
	})

	return defaultCat
}
