// Command y2024 solves Advent of Code 2024.
//
// Each D{day}p{part} method is first run against the sample in its doc
// comment and then against <inputs>/2024/<day>.input.
package main

import (
	"embed"

	aoc "github.com/maisem/aoc2024"
)

func main() {
	aoc.Run(2024, source, &solver{})
}

//go:embed *.go
var source embed.FS

type solver struct {
	*aoc.Puzzle
}
