package days

import (
	"errors"
	"fmt"

	"github.com/maisem/aoc2024"
	"tailscale.com/util/set"
)

func day16(input string, _ aoc.Config) (string, error) {
	m, err := parseReindeerMaze(input)
	if err != nil {
		return "", err
	}
	score, err := m.lowestScore()
	if err != nil {
		return "", fmt.Errorf("finding path: %w", err)
	}
	paths, err := m.search().AllShortest(m.startState())
	if err != nil {
		return "", fmt.Errorf("finding all paths: %w", err)
	}
	return answers(score, countPathTiles(paths)), nil
}

const (
	stepCost = 1
	turnCost = 1000
)

type reindeerMaze struct {
	grid       *aoc.Grid[byte]
	start, end aoc.Pt
}

type reindeer struct {
	p   aoc.Pt
	dir aoc.Dir
}

func (a reindeer) less(b reindeer) bool {
	if a.p != b.p {
		return a.p.Less(b.p)
	}
	return a.dir < b.dir
}

func parseReindeerMaze(input string) (*reindeerMaze, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return nil, err
	}
	m := &reindeerMaze{grid: g}
	var ok bool
	if m.start, ok = aoc.FindReplace(g, 'S', '.'); !ok {
		return nil, errors.New("no start")
	}
	if m.end, ok = aoc.FindReplace(g, 'E', '.'); !ok {
		return nil, errors.New("no end")
	}
	return m, nil
}

func (m *reindeerMaze) startState() reindeer {
	return reindeer{m.start, aoc.East}
}

// search moves the reindeer one tile forward for stepCost or turns it 90
// degrees in place for turnCost.
func (m *reindeerMaze) search() *aoc.Search[reindeer] {
	return &aoc.Search[reindeer]{
		Next: func(r reindeer, yield func(reindeer, int)) {
			if ahead := r.p.Add(r.dir.Step(1)); m.grid.At(ahead) == '.' {
				yield(reindeer{ahead, r.dir}, stepCost)
			}
			yield(reindeer{r.p, r.dir.Left()}, turnCost)
			yield(reindeer{r.p, r.dir.Right()}, turnCost)
		},
		Goal: func(r reindeer) bool { return r.p == m.end },
		Less: reindeer.less,
	}
}

// lowestScore returns the cost of one cheapest path from start to end.
func (m *reindeerMaze) lowestScore() (int, error) {
	res, err := m.search().Shortest(m.startState())
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

// countPathTiles returns the number of tiles on at least one optimal path.
func countPathTiles(paths *aoc.Paths[reindeer]) int {
	tiles := make(set.Set[aoc.Pt])
	for r := range paths.States() {
		tiles.Add(r.p)
	}
	return tiles.Len()
}
