package aoc

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnreachable is returned by Search.Run when no goal state can be reached
// from the start.
var ErrUnreachable = errors.New("aoc: goal unreachable")

// ErrNegativeCost is returned by Search.Run when Next reports an edge with a
// negative cost.
var ErrNegativeCost = errors.New("aoc: negative edge cost")

// Search is a Dijkstra search over an arbitrary state space. Edge costs must
// be non-negative.
type Search[S comparable] struct {
	Start S
	Goal  func(S) bool
	// Next calls edge for each state reachable from s along with the cost
	// of the transition.
	Next func(s S, edge func(next S, cost int))

	// AllPaths keeps every predecessor that reaches a state at its minimum
	// cost, so that SearchResult.OnBestPaths can enumerate every optimal
	// path instead of one of them.
	AllPaths bool
}

// SearchResult is the outcome of a successful Search.
type SearchResult[S comparable] struct {
	// Cost is the minimum total cost to reach a goal.
	Cost int
	// Goals are the goal states settled at Cost. Without AllPaths only the
	// first one is recorded.
	Goals []S
	// Settled maps each expanded state to its minimum cost.
	Settled map[S]int

	preds map[S][]S
}

type searchEntry[S comparable] struct {
	state S
	from  S
	root  bool
}

// Run performs the search. It returns ErrUnreachable if the frontier is
// exhausted before a goal state is settled, and ErrNegativeCost as soon as
// an expanded state has a negative edge.
func (s Search[S]) Run() (*SearchResult[S], error) {
	res := &SearchResult[S]{
		Cost:    -1,
		Settled: make(map[S]int),
		preds:   make(map[S][]S),
	}
	q := MinQueue[searchEntry[S]]()
	q.Push(&PQI[searchEntry[S]]{V: searchEntry[S]{state: s.Start, root: true}})
	for q.Len() > 0 {
		it := q.Pop()
		e, cost := it.V, it.P
		if res.Cost >= 0 && cost > res.Cost {
			break
		}
		if c, ok := res.Settled[e.state]; ok {
			if s.AllPaths && c == cost && !e.root {
				res.addPred(e.state, e.from)
			}
			continue
		}
		res.Settled[e.state] = cost
		if !e.root {
			res.addPred(e.state, e.from)
		}
		if s.Goal(e.state) {
			res.Cost = cost
			res.Goals = append(res.Goals, e.state)
			if !s.AllPaths {
				break
			}
			continue
		}
		var negative int
		s.Next(e.state, func(next S, w int) {
			if w < 0 {
				negative = w
				return
			}
			if c, ok := res.Settled[next]; ok && (!s.AllPaths || c < cost+w) {
				return
			}
			q.Push(&PQI[searchEntry[S]]{
				V: searchEntry[S]{state: next, from: e.state},
				P: cost + w,
			})
		})
		if negative < 0 {
			return nil, fmt.Errorf("edge from %v costs %d: %w", e.state, negative, ErrNegativeCost)
		}
	}
	if res.Cost < 0 {
		return nil, ErrUnreachable
	}
	return res, nil
}

func (r *SearchResult[S]) addPred(s, from S) {
	if slices.Contains(r.preds[s], from) {
		return
	}
	r.preds[s] = append(r.preds[s], from)
}

// Path returns one minimum-cost path from the start to the first goal,
// start first.
func (r *SearchResult[S]) Path() []S {
	cur := r.Goals[0]
	path := []S{cur}
	for {
		p := r.preds[cur]
		if len(p) == 0 {
			break
		}
		cur = p[0]
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// OnBestPaths returns every state that lies on at least one minimum-cost
// path to a goal. It walks predecessor sets backwards from the goals until no
// new state is added.
func (r *SearchResult[S]) OnBestPaths() map[S]bool {
	seen := make(map[S]bool)
	q := NewQueue(r.Goals...)
	q.While(func(s S) bool {
		if seen[s] {
			return true
		}
		seen[s] = true
		for _, p := range r.preds[s] {
			q.Push(p)
		}
		return true
	})
	return seen
}
