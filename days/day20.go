package days

import (
	"errors"

	"github.com/maisem/aoc2024"
)

const minCheatSaving = 100

func day20(input string, _ aoc.Config) (string, error) {
	t, err := parseRacetrack(input)
	if err != nil {
		return "", err
	}
	atLeast := func(saved int) bool { return saved >= minCheatSaving }
	return answers(t.countCheats(2, atLeast), t.countCheats(20, atLeast)), nil
}

type racetrack struct {
	dist  *aoc.Grid[int] // steps from start, -1 for walls
	track []aoc.Pt
}

func parseRacetrack(input string) (*racetrack, error) {
	g, err := aoc.ParseGrid(input)
	if err != nil {
		return nil, err
	}
	start, ok := aoc.Find(g, 'S')
	if !ok {
		return nil, errors.New("no start")
	}
	end, ok := aoc.Find(g, 'E')
	if !ok {
		return nil, errors.New("no end")
	}
	t := &racetrack{
		dist: aoc.BFS(g, start, func(_ aoc.Pt, c byte) bool { return c != '#' }),
	}
	if t.dist.At(end) < 0 {
		return nil, errors.New("end unreachable")
	}
	for p, d := range t.dist.All() {
		if d >= 0 {
			t.track = append(t.track, p)
		}
	}
	return t, nil
}

// countCheats counts the cheats of at most maxLen picoseconds, each
// identified by its start and end track positions, whose time saved
// satisfies keep.
func (t *racetrack) countCheats(maxLen int, keep func(saved int) bool) int {
	n := 0
	for i, p := range t.track {
		dp := t.dist.At(p)
		for _, q := range t.track[i+1:] {
			md := p.MDist(q)
			if md > maxLen {
				continue
			}
			saved := aoc.AbsDiff(t.dist.At(q), dp) - md
			if saved > 0 && keep(saved) {
				n++
			}
		}
	}
	return n
}
