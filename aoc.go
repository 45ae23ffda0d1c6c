// Package aoc holds the grid and search helpers used to solve Advent of Code
// 2024 puzzles, and the runner that feeds each day its input.
package aoc

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// Year is the Advent of Code event the puzzles belong to.
const Year = 2024

// Config is passed to every day's solver.
type Config struct {
	Verbose bool
	Log     logrus.FieldLogger
}

// Logger returns c.Log, or a logger that discards everything if it is nil.
func (c Config) Logger() logrus.FieldLogger {
	if c.Log != nil {
		return c.Log
	}
	l := logrus.New()
	l.Out = io.Discard
	return l
}

// Day is a registered puzzle solver. Run parses input and returns the
// answers, separated by a space.
type Day struct {
	Num int
	Run func(input string, cfg Config) (string, error)
}

// Inputs provides puzzle inputs by day number.
type Inputs interface {
	Get(ctx context.Context, day int) (string, error)
}

// StaticInputs serves inputs from memory.
type StaticInputs map[int]string

func (s StaticInputs) Get(_ context.Context, day int) (string, error) {
	in, ok := s[day]
	if !ok {
		return "", fmt.Errorf("no input for day %d", day)
	}
	return in, nil
}

// Select returns the days to run. Explicit day numbers take precedence over
// all; with neither, only the last registered day is returned.
func Select(days []Day, nums []int, all bool) ([]Day, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("no days registered")
	}
	switch {
	case len(nums) > 0:
		byNum := make(map[int]Day, len(days))
		for _, d := range days {
			byNum[d.Num] = d
		}
		want := make(map[int]bool, len(nums))
		for _, n := range nums {
			if _, ok := byNum[n]; !ok {
				have := maps.Keys(byNum)
				slices.Sort(have)
				return nil, fmt.Errorf("day %d not implemented (have %v)", n, have)
			}
			want[n] = true
		}
		var out []Day
		for _, d := range days {
			if want[d.Num] {
				out = append(out, d)
			}
		}
		return out, nil
	case all:
		return days, nil
	}
	return days[len(days)-1:], nil
}

// Run runs each day in order, writing its answer and elapsed time to w, or
// its error to errw. A failing day does not stop the others. It returns the
// number of days that failed.
func Run(ctx context.Context, w, errw io.Writer, in Inputs, days []Day, cfg Config) (failed int) {
	log := cfg.Logger()
	for _, d := range days {
		dcfg := cfg
		dcfg.Log = log.WithField("day", d.Num)
		res, dur, err := runDay(ctx, in, d, dcfg)
		if err != nil {
			failed++
			fmt.Fprintf(w, "Day %2d:\n", d.Num)
			fmt.Fprintf(errw, "day %d: %v\n", d.Num, err)
			continue
		}
		fmt.Fprintf(w, "Day %2d: %s  (%s)\n", d.Num, res, FormatDuration(dur))
	}
	return failed
}

func runDay(ctx context.Context, in Inputs, d Day, cfg Config) (res string, dur time.Duration, err error) {
	input, err := in.Get(ctx, d.Num)
	if err != nil {
		return "", 0, fmt.Errorf("getting input: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	t0 := time.Now()
	res, err = d.Run(input, cfg)
	return strings.TrimSpace(res), time.Since(t0), err
}

// FormatDuration formats d as milliseconds with one decimal when it is under
// 100ms, and as [Hh][Mm]S.mmms otherwise.
func FormatDuration(d time.Duration) string {
	if ms := float64(d) / float64(time.Millisecond); ms < 100 {
		return fmt.Sprintf("%.1fms", ms)
	}
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	ms := int(d/time.Millisecond) % 1000
	var sb strings.Builder
	if h > 0 {
		fmt.Fprintf(&sb, "%dh", h)
	}
	if h > 0 || m > 0 {
		fmt.Fprintf(&sb, "%dm", m)
	}
	fmt.Fprintf(&sb, "%d.%03ds", s, ms)
	return sb.String()
}
