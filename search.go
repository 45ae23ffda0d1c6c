package aoc

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/heap"
	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

var (
	// ErrNoPath is returned when no goal state is reachable.
	ErrNoPath = errors.New("no path")
	// ErrSearchExhausted is returned when a search pops more than its
	// MaxPops states.
	ErrSearchExhausted = errors.New("search exhausted")
)

// Search is a Dijkstra search over caller-defined states.
type Search[S comparable] struct {
	// Next calls yield for each successor of s with the non-negative cost of
	// moving there.
	Next func(s S, yield func(next S, cost int))
	// Goal reports whether s is a goal state.
	Goal func(s S) bool
	// Less optionally orders states with equal cost so the pop order, and
	// therefore the returned end state, is reproducible.
	Less func(a, b S) bool
	// MaxPops limits the number of expanded states. Zero means no limit.
	MaxPops int
}

// Result is the outcome of Search.Shortest.
type Result[S any] struct {
	Cost int
	End  S
}

type node[S any] struct {
	s    S
	cost int
}

func (sr *Search[S]) frontier() *heap.Heap[node[S]] {
	return heap.New(func(a, b node[S]) bool {
		if a.cost != b.cost {
			return a.cost < b.cost
		}
		return sr.Less != nil && sr.Less(a.s, b.s)
	})
}

func (sr *Search[S]) expand(n node[S], f func(next S, cost int)) {
	sr.Next(n.s, func(next S, cost int) {
		if cost < 0 {
			panic(fmt.Sprintf("negative cost %d from %v to %v", cost, n.s, next))
		}
		f(next, n.cost+cost)
	})
}

// Shortest returns the minimum cost from any of starts to a goal state and the
// goal state reached. A successor is only queued when it strictly improves on
// the best cost seen for that state.
func (sr *Search[S]) Shortest(starts ...S) (Result[S], error) {
	best := make(map[S]int)
	q := sr.frontier()
	for _, s := range starts {
		best[s] = 0
		q.Push(node[S]{s, 0})
	}
	pops := 0
	for {
		n, ok := q.Pop()
		if !ok {
			return Result[S]{}, ErrNoPath
		}
		if n.cost > best[n.s] {
			continue // stale
		}
		if sr.Goal(n.s) {
			return Result[S]{Cost: n.cost, End: n.s}, nil
		}
		if pops++; sr.MaxPops > 0 && pops > sr.MaxPops {
			return Result[S]{}, ErrSearchExhausted
		}
		sr.expand(n, func(next S, cost int) {
			if b, ok := best[next]; ok && cost >= b {
				return
			}
			best[next] = cost
			q.Push(node[S]{next, cost})
		})
	}
}

// Paths holds every optimal path found by Search.AllShortest.
type Paths[S comparable] struct {
	Cost  int
	Goals []S // goal states reached at Cost

	prev map[S][]S
}

// Predecessors returns the states that reach s at its best cost.
func (p *Paths[S]) Predecessors(s S) []S {
	return p.prev[s]
}

// States returns every state lying on at least one optimal path.
func (p *Paths[S]) States() set.Set[S] {
	out := make(set.Set[S])
	var stk Stack[S]
	for _, g := range p.Goals {
		out.Add(g)
		stk.Push(g)
	}
	stk.While(func(s S) bool {
		for _, q := range p.prev[s] {
			if !out.Contains(q) {
				out.Add(q)
				stk.Push(q)
			}
		}
		return true
	})
	return out
}

// AllShortest is like Shortest but finds every tied-optimal path. Successors
// that tie the best known cost of a state are admitted as additional
// predecessors, and the search continues until the frontier cost exceeds the
// cost of the first goal found.
func (sr *Search[S]) AllShortest(starts ...S) (*Paths[S], error) {
	best := make(map[S]int)
	expanded := make(set.Set[S])
	q := sr.frontier()
	for _, s := range starts {
		best[s] = 0
		q.Push(node[S]{s, 0})
	}
	p := &Paths[S]{Cost: -1}
	pops := 0
	for {
		n, ok := q.Pop()
		if !ok {
			break
		}
		if p.Cost >= 0 && n.cost > p.Cost {
			break
		}
		if n.cost > best[n.s] || expanded.Contains(n.s) {
			continue
		}
		expanded.Add(n.s)
		if sr.Goal(n.s) {
			p.Cost = n.cost
			p.Goals = append(p.Goals, n.s)
			continue
		}
		if pops++; sr.MaxPops > 0 && pops > sr.MaxPops {
			return nil, ErrSearchExhausted
		}
		sr.expand(n, func(next S, cost int) {
			b, ok := best[next]
			switch {
			case !ok || cost < b:
				best[next] = cost
				mak.Set(&p.prev, next, []S{n.s})
				q.Push(node[S]{next, cost})
			case cost == b:
				if !slices.Contains(p.prev[next], n.s) {
					p.prev[next] = append(p.prev[next], n.s)
				}
			}
		})
	}
	if p.Cost < 0 {
		return nil, ErrNoPath
	}
	return p, nil
}

// BFS returns the number of unit steps from start to every cell reachable
// through cells for which passable returns true. Unreached cells hold -1.
func BFS[T any](g *Grid[T], start Pt, passable func(Pt, T) bool) *Grid[int] {
	dist := NewGridLike(g, -1)
	BFSInto(dist, g, start, passable)
	return dist
}

// BFSInto is like BFS but reuses dist, which must have g's dimensions.
func BFSInto[T any](dist *Grid[int], g *Grid[T], start Pt, passable func(Pt, T) bool) {
	dist.Fill(-1)
	if !dist.Set(start, 0) {
		return
	}
	q := NewQueue(start)
	q.While(func(p Pt) bool {
		d := dist.At(p)
		for _, n := range p.Neighbors4() {
			v, ok := g.Get(n)
			if !ok || dist.At(n) != -1 || !passable(n, v) {
				continue
			}
			dist.Set(n, d+1)
			q.Push(n)
		}
		return true
	})
}
