package graphs

import "fmt"

// Visitation colors for depth-first search.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // finished
)

// courseSorter holds the state of one topological sort over numCourses vertices.
type courseSorter struct {
	adj   [][]int // adj[u] lists v for every edge u -> v
	state []int   // white / gray / black per vertex
	order []int   // post-order
}

func newCourseSorter(numCourses int, prerequisites [][]int) (*courseSorter, error) {
	adj := make([][]int, numCourses)
	for _, p := range prerequisites {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: prerequisite %v is not a pair", ErrBadVertex, p)
		}
		course, pre := p[0], p[1]
		if course < 0 || course >= numCourses || pre < 0 || pre >= numCourses {
			return nil, fmt.Errorf("%w: prerequisite %v with %d courses", ErrBadVertex, p, numCourses)
		}
		// take pre before course
		adj[pre] = append(adj[pre], course)
	}

	return &courseSorter{
		adj:   adj,
		state: make([]int, numCourses),
		order: make([]int, 0, numCourses),
	}, nil
}

// sort runs DFS from every unvisited vertex in ascending order and returns the
// reversed post-order.
func (s *courseSorter) sort() ([]int, error) {
	for v := range s.adj {
		if s.state[v] == white {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

func (s *courseSorter) visit(u int) error {
	switch s.state[u] {
	case gray:
		return fmt.Errorf("%w: back edge into course %d", ErrCycleDetected, u)
	case black:
		return nil
	}
	s.state[u] = gray
	for _, v := range s.adj[u] {
		if err := s.visit(v); err != nil {
			return err
		}
	}
	s.state[u] = black
	s.order = append(s.order, u)

	return nil
}

// CanFinish reports whether all numCourses courses can be taken given
// prerequisites [course, pre] (pre must be taken before course).
func CanFinish(numCourses int, prerequisites [][]int) (bool, error) {
	s, err := newCourseSorter(numCourses, prerequisites)
	if err != nil {
		return false, err
	}
	if _, err := s.sort(); err != nil {
		return false, nil
	}

	return true, nil
}

// FindOrder returns one order in which all courses can be taken, or an empty
// slice if the prerequisites contain a cycle. The order is the reversed DFS
// post-order with roots tried in ascending course number, so it is
// deterministic for a given input.
func FindOrder(numCourses int, prerequisites [][]int) ([]int, error) {
	s, err := newCourseSorter(numCourses, prerequisites)
	if err != nil {
		return nil, err
	}
	order, err := s.sort()
	if err != nil {
		return []int{}, nil
	}

	return order, nil
}
