package main

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aoc2024"
)

/*
want=126384

029A
980A
179A
456A
379A
*/
func (s solver) D21p1() any {
	return complexity(strings.Fields(s.Text()), 2)
}

// want=154115708116294
func (s solver) D21p2() any {
	return complexity(strings.Fields(s.Text()), 25)
}

var (
	numericKeypad     = newKeypad("789\n456\n123\n 0A")
	directionalKeypad = newKeypad(" ^A\n<v>")
)

// keypad is a grid of buttons operated by a robot arm that starts on 'A'.
type keypad struct {
	keys map[rune]aoc.Pt
	gap  aoc.Pt
}

func newKeypad(layout string) *keypad {
	g := aoc.MustGet(aoc.ParseRunes(layout))
	k := &keypad{keys: make(map[rune]aoc.Pt)}
	g.All(func(p aoc.Pt, r rune) bool {
		if r == ' ' {
			k.gap = p
		} else {
			k.keys[r] = p
		}
		return true
	})
	return k
}

// moves returns the candidate sequences of directional presses, each ending
// in 'A', that move the arm from one key to another and press it. Only
// all-horizontal-then-vertical and all-vertical-then-horizontal routes can
// be optimal; a route crossing the gap is dropped.
func (k *keypad) moves(from, to rune) []string {
	a, ok := k.keys[from]
	if !ok {
		panic(fmt.Sprintf("no key %q", from))
	}
	b, ok := k.keys[to]
	if !ok {
		panic(fmt.Sprintf("no key %q", to))
	}
	h := strings.Repeat(">", max(b.X-a.X, 0)) + strings.Repeat("<", max(a.X-b.X, 0))
	v := strings.Repeat("v", max(b.Y-a.Y, 0)) + strings.Repeat("^", max(a.Y-b.Y, 0))
	if h == "" || v == "" {
		return []string{h + v + "A"}
	}
	var out []string
	if (aoc.Pt{X: b.X, Y: a.Y}) != k.gap {
		out = append(out, h+v+"A")
	}
	if (aoc.Pt{X: a.X, Y: b.Y}) != k.gap {
		out = append(out, v+h+"A")
	}
	return out
}

// cost returns the cost of typing seq on k, where the cost of each
// candidate move sequence is given by moveCost.
func (k *keypad) cost(seq string, moveCost func(string) int) int {
	total := 0
	at := 'A'
	for _, c := range seq {
		best := -1
		for _, m := range k.moves(at, c) {
			if n := moveCost(m); best < 0 || n < best {
				best = n
			}
		}
		total += best
		at = c
	}
	return total
}

// press is a sequence to be typed on a directional keypad that is itself
// operated through depth more directional keypads.
type press struct {
	seq   string
	depth int
}

// presses returns the number of button presses a human must make to type
// p.seq.
func presses(m *aoc.Memo[press, int], p press) int {
	if p.depth == 0 {
		return len(p.seq)
	}
	return directionalKeypad.cost(p.seq, func(s string) int {
		return m.Get(press{s, p.depth - 1})
	})
}

// complexity sums, over the codes, the numeric part of the code times the
// fewest presses needed to type it on the numeric keypad through the given
// number of robot-operated directional keypads.
func complexity(codes []string, robots int) int {
	m := aoc.NewMemo(presses)
	total := 0
	for _, code := range codes {
		n := numericKeypad.cost(code, func(s string) int {
			return m.Get(press{s, robots})
		})
		total += n * aoc.Int(strings.TrimSuffix(code, "A"))
	}
	return total
}
