package days

import (
	"fmt"

	"github.com/maisem/aoc2024"
)

func day02(input string, _ aoc.Config) (string, error) {
	var safe, dampened int
	for i, line := range aoc.Lines(input) {
		levels, err := aoc.Ints(line)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		if reportSafe(levels) {
			safe++
			dampened++
		} else if reportSafeDampened(levels) {
			dampened++
		}
	}
	return answers(safe, dampened), nil
}

// reportSafe reports whether levels strictly increase or decrease with
// steps of 1 to 3.
func reportSafe(levels []int) bool {
	if len(levels) < 2 {
		return true
	}
	inc := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		d := levels[i] - levels[i-1]
		if !inc {
			d = -d
		}
		if d < 1 || d > 3 {
			return false
		}
	}
	return true
}

func reportSafeDampened(levels []int) bool {
	buf := make([]int, 0, len(levels))
	for skip := range levels {
		buf = append(buf[:0], levels[:skip]...)
		buf = append(buf, levels[skip+1:]...)
		if reportSafe(buf) {
			return true
		}
	}
	return false
}
