package aoc

import (
	"errors"
	"slices"
	"testing"
)

// graphSearch returns a search over a weighted directed graph of strings.
func graphSearch(edges map[string]map[string]int, goal string) *Search[string] {
	return &Search[string]{
		Next: func(s string, yield func(string, int)) {
			for n, c := range edges[s] {
				yield(n, c)
			}
		},
		Goal: func(s string) bool { return s == goal },
		Less: func(a, b string) bool { return a < b },
	}
}

func TestSearchShortest(t *testing.T) {
	edges := map[string]map[string]int{
		"a": {"b": 7, "c": 9, "f": 14},
		"b": {"a": 7, "c": 10, "d": 15},
		"c": {"a": 9, "b": 10, "d": 11, "f": 2},
		"d": {"b": 15, "c": 11, "e": 6},
		"e": {"d": 6, "f": 9},
		"f": {"a": 14, "c": 2, "e": 9},
	}
	for i := 0; i < 10; i++ {
		res, err := graphSearch(edges, "e").Shortest("a")
		if err != nil {
			t.Fatal(err)
		}
		if res.Cost != 20 || res.End != "e" {
			t.Fatalf("Shortest = %+v, want cost 20 at e", res)
		}
	}

	res, err := graphSearch(edges, "a").Shortest("a")
	if err != nil || res.Cost != 0 {
		t.Errorf("start is goal: %+v, %v", res, err)
	}
}

func TestSearchNoPath(t *testing.T) {
	edges := map[string]map[string]int{
		"a": {"b": 1},
		"b": {"a": 1},
		"c": {"a": 1},
	}
	if _, err := graphSearch(edges, "c").Shortest("a"); !errors.Is(err, ErrNoPath) {
		t.Errorf("Shortest err = %v, want ErrNoPath", err)
	}
	if _, err := graphSearch(edges, "c").AllShortest("a"); !errors.Is(err, ErrNoPath) {
		t.Errorf("AllShortest err = %v, want ErrNoPath", err)
	}
}

func TestSearchExhausted(t *testing.T) {
	// An unbounded state space never runs out of states.
	s := &Search[int]{
		Next: func(n int, yield func(int, int)) { yield(n+1, 1) },
		Goal: func(n int) bool { return n < 0 },
	}
	s.MaxPops = 100
	if _, err := s.Shortest(0); !errors.Is(err, ErrSearchExhausted) {
		t.Errorf("Shortest err = %v, want ErrSearchExhausted", err)
	}
	if _, err := s.AllShortest(0); !errors.Is(err, ErrSearchExhausted) {
		t.Errorf("AllShortest err = %v, want ErrSearchExhausted", err)
	}
}

func TestSearchNegativeCostPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	s := &Search[int]{
		Next: func(n int, yield func(int, int)) { yield(n+1, -1) },
		Goal: func(n int) bool { return n == 3 },
	}
	s.Shortest(0)
}

func TestSearchAllShortest(t *testing.T) {
	// Two tied routes a-b-d and a-c-d of cost 4, and a longer a-e-d.
	edges := map[string]map[string]int{
		"a": {"b": 1, "c": 2, "e": 1},
		"b": {"d": 3},
		"c": {"d": 2},
		"e": {"d": 9},
	}
	for i := 0; i < 10; i++ {
		p, err := graphSearch(edges, "d").AllShortest("a")
		if err != nil {
			t.Fatal(err)
		}
		if p.Cost != 4 {
			t.Fatalf("Cost = %d, want 4", p.Cost)
		}
		var got []string
		for s := range p.States() {
			got = append(got, s)
		}
		slices.Sort(got)
		if want := []string{"a", "b", "c", "d"}; !slices.Equal(got, want) {
			t.Fatalf("States = %v, want %v", got, want)
		}
		preds := slices.Clone(p.Predecessors("d"))
		slices.Sort(preds)
		if want := []string{"b", "c"}; !slices.Equal(preds, want) {
			t.Errorf("Predecessors(d) = %v, want %v", preds, want)
		}
	}
}

func TestSearchMatchesBFS(t *testing.T) {
	g := MustGet(ParseGrid("" +
		"S..#....\n" +
		".#.#.##.\n" +
		".#...#..\n" +
		".####.#.\n" +
		"......#E\n"))
	start, _ := FindReplace(g, 'S', '.')
	end, _ := FindReplace(g, 'E', '.')
	open := func(_ Pt, c byte) bool { return c == '.' }

	dist := BFS(g, start, open)
	s := &Search[Pt]{
		Next: func(p Pt, yield func(Pt, int)) {
			for _, q := range p.Neighbors4() {
				if g.At(q) == '.' {
					yield(q, 1)
				}
			}
		},
		Goal: func(p Pt) bool { return p == end },
		Less: Pt.Less,
	}
	res, err := s.Shortest(start)
	if err != nil {
		t.Fatal(err)
	}
	if want := dist.At(end); res.Cost != want {
		t.Errorf("Shortest cost = %d, BFS = %d", res.Cost, want)
	}
	if dist.At(Pt{1, 1}) != -1 {
		t.Errorf("wall has distance %d", dist.At(Pt{1, 1}))
	}

	// BFSInto resets the reused grid.
	g.Set(Pt{7, 3}, '#')
	g.Set(Pt{6, 2}, '#')
	BFSInto(dist, g, start, open)
	if d := dist.At(end); d != -1 {
		t.Errorf("end reachable at %d after walling it off", d)
	}
	if _, err := s.Shortest(start); !errors.Is(err, ErrNoPath) {
		t.Errorf("Shortest err = %v, want ErrNoPath", err)
	}
}
