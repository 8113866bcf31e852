package main

import (
	"errors"
	"strings"

	aoc "github.com/maisem/aoc2024"
)

/*
want=6

r, wr, b, g, bwu, rb, gb, br

brwrr
bggr
gbbr
rrbgbr
ubwu
bwurrg
brgr
bbrgwb
*/
func (s solver) D19p1() any {
	towels, designs := aoc.MustGet2(parseOnsen(s.Text()))
	n := 0
	for _, c := range arrangements(towels, designs) {
		if c > 0 {
			n++
		}
	}
	return n
}

// want=16
func (s solver) D19p2() any {
	towels, designs := aoc.MustGet2(parseOnsen(s.Text()))
	return aoc.Sum(arrangements(towels, designs)...)
}

func parseOnsen(input string) (towels, designs []string, err error) {
	head, body, ok := strings.Cut(input, "\n\n")
	if !ok {
		return nil, nil, errors.New("missing blank line after towel list")
	}
	for _, t := range strings.Split(head, ",") {
		if t = strings.TrimSpace(t); t != "" {
			towels = append(towels, t)
		}
	}
	for _, d := range strings.Split(strings.TrimSpace(body), "\n") {
		designs = append(designs, strings.TrimSpace(d))
	}
	return towels, designs, nil
}

// arrangements returns, for each design, the number of ways to line up
// towels to form it exactly.
func arrangements(towels, designs []string) []int {
	m := aoc.NewMemo(func(m *aoc.Memo[string, int], rest string) int {
		if rest == "" {
			return 1
		}
		n := 0
		for _, t := range towels {
			if tail, ok := strings.CutPrefix(rest, t); ok {
				n += m.Get(tail)
			}
		}
		return n
	})
	out := make([]int, len(designs))
	for i, d := range designs {
		out[i] = m.Get(d)
	}
	return out
}
