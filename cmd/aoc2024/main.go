// The aoc2024 command runs Advent of Code 2024 solutions.
//
// With no arguments it runs the most recently added day. Day numbers may be
// given as arguments, or --all runs every day.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/maisem/aoc2024"
	"github.com/maisem/aoc2024/days"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		all        = flag.BoolP("all", "a", false, "run all days")
		verbose    = flag.BoolP("verbose", "v", false, "print debugging output")
		inputFile  = flag.String("input", "", "read the input from this file instead of the cache or adventofcode.com")
		cpuProfile = flag.String("cpuprofile", "", "write a CPU profile to this directory")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [day ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logrus.New()
	log.Out = os.Stderr
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var nums []int
	for _, a := range flag.Args() {
		n, err := strconv.Atoi(a)
		if err != nil {
			log.Fatalf("bad day %q", a)
		}
		nums = append(nums, n)
	}
	sel, err := aoc.Select(days.All, nums, *all)
	if err != nil {
		log.Fatal(err)
	}

	var in aoc.Inputs = aoc.NewInputSource(aoc.Year, log)
	if *inputFile != "" {
		if len(sel) != 1 {
			log.Fatal("--input needs exactly one day")
		}
		in = aoc.FileInputs(*inputFile)
	}

	if *cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuProfile), profile.Quiet).Stop()
	}

	cfg := aoc.Config{Verbose: *verbose, Log: log}
	if failed := aoc.Run(context.Background(), os.Stdout, os.Stderr, in, sel, cfg); failed > 0 {
		return 1
	}
	return 0
}
