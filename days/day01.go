package days

import (
	"fmt"
	"slices"

	"github.com/maisem/aoc2024"
)

func day01(input string, _ aoc.Config) (string, error) {
	l, r, err := parseLocationLists(input)
	if err != nil {
		return "", err
	}
	return answers(totalDistance(l, r), similarity(l, r)), nil
}

func parseLocationLists(input string) (l, r []int, err error) {
	for i, line := range aoc.Lines(input) {
		v, err := aoc.Ints(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(v) != 2 {
			return nil, nil, fmt.Errorf("line %d: want 2 numbers, got %d", i+1, len(v))
		}
		l = append(l, v[0])
		r = append(r, v[1])
	}
	return l, r, nil
}

func totalDistance(l, r []int) int {
	l, r = slices.Clone(l), slices.Clone(r)
	slices.Sort(l)
	slices.Sort(r)
	sum := 0
	for i := range l {
		sum += aoc.AbsDiff(l[i], r[i])
	}
	return sum
}

func similarity(l, r []int) int {
	count := make(map[int]int)
	for _, v := range r {
		count[v]++
	}
	sum := 0
	for _, v := range l {
		sum += v * count[v]
	}
	return sum
}
