package days

import (
	"github.com/maisem/aoc2024"
)

func day11(input string, _ aoc.Config) (string, error) {
	stones, err := aoc.Ints(input)
	if err != nil {
		return "", err
	}
	return answers(blinkStones(stones, 25), blinkStones(stones, 75)), nil
}

type blinkKey struct {
	stone  int
	blinks int
}

func blinkStones(stones []int, blinks int) int {
	memo := make(map[blinkKey]int)
	n := 0
	for _, s := range stones {
		n += blink(memo, s, blinks)
	}
	return n
}

// blink returns how many stones stone turns into after n blinks.
func blink(memo map[blinkKey]int, stone, n int) int {
	if n == 0 {
		return 1
	}
	k := blinkKey{stone, n}
	if v, ok := memo[k]; ok {
		return v
	}
	var v int
	if stone == 0 {
		v = blink(memo, 1, n-1)
	} else if l, r, ok := splitStone(stone); ok {
		v = blink(memo, l, n-1) + blink(memo, r, n-1)
	} else {
		v = blink(memo, stone*2024, n-1)
	}
	memo[k] = v
	return v
}

// splitStone splits a stone with an even number of digits into its left and
// right halves.
func splitStone(stone int) (l, r int, ok bool) {
	digits := 0
	for v := stone; v > 0; v /= 10 {
		digits++
	}
	if digits%2 != 0 {
		return 0, 0, false
	}
	div := 1
	for i := 0; i < digits/2; i++ {
		div *= 10
	}
	return stone / div, stone % div, true
}
