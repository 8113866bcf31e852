package aoc

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

const largeGarden = `RRRRIICCFF
RRRRIICCCF
VVRRRCCFFF
VVRCCCJFFF
VVVVCJJCFE
VVIVCCJJEE
VVIIICJJEE
MIIIIIJJEE
MIIISIJEEE
MMMISSJEEE`

func TestPrice(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		perimeter int
		sides     int
	}{
		{
			name: "small",
			in: `AAAA
BBCD
BBCC
EEEC`,
			perimeter: 140,
			sides:     80,
		},
		{
			name: "enclosed",
			in: `OOOOO
OXOXO
OOOOO
OXOXO
OOOOO`,
			perimeter: 772,
			sides:     436,
		},
		{
			name:      "large",
			in:        largeGarden,
			perimeter: 1930,
			sides:     1206,
		},
		{
			name: "e-shape",
			in: `EEEEE
EXXXX
EEEEE
EXXXX
EEEEE`,
			sides: 236,
		},
		{
			name: "diagonal-holes",
			in: `AAAAAA
AAABBA
AAABBA
ABBAAA
ABBAAA
AAAAAA`,
			sides: 368,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := FindRegions(MustGet(ParseRunes(tt.in)))
			if tt.perimeter != 0 {
				if got := Price(regions, false); got != tt.perimeter {
					t.Errorf("perimeter price = %d, want %d", got, tt.perimeter)
				}
			}
			if got := Price(regions, true); got != tt.sides {
				t.Errorf("sides price = %d, want %d", got, tt.sides)
			}
		})
	}
}

func TestFindRegions(t *testing.T) {
	regions := FindRegions(MustGet(ParseRunes(largeGarden)))
	require.Len(t, regions, 11)

	seen := make(map[Pt]bool)
	for _, r := range regions {
		for _, p := range r.Cells {
			require.False(t, seen[p], "cell %v in two regions", p)
			seen[p] = true
		}
	}
	require.Len(t, seen, 100)

	// Regions come back in scan order of their first cell.
	var labels []rune
	for _, r := range regions {
		labels = append(labels, r.Label)
	}
	require.Equal(t, []rune("RICFVJCEIMS"), labels)

	want := map[rune][2]int{ // area, perimeter of the first region with the label
		'R': {12, 18},
		'I': {4, 8},
		'C': {14, 28},
		'F': {10, 18},
		'V': {13, 20},
		'J': {11, 20},
		'E': {13, 18},
		'M': {5, 12},
		'S': {3, 8},
	}
	got := make(map[rune][2]int)
	for _, r := range regions {
		if _, ok := got[r.Label]; !ok {
			got[r.Label] = [2]int{r.Area(), r.Perimeter}
		}
	}
	require.Equal(t, want, got)
}

func TestFindRegionsMerge(t *testing.T) {
	// The two arms of the U are separate partial regions until the bottom
	// row joins them.
	g := MustGet(ParseRunes("A.A\nA.A\nAAA"))
	regions := FindRegions(g)
	require.Len(t, regions, 2)
	require.Equal(t, 'A', regions[0].Label)
	require.Equal(t, 7, regions[0].Area())
	require.Equal(t, 16, regions[0].Perimeter)
	require.Equal(t, 8, regions[0].Sides())
	require.Equal(t, 2, regions[1].Area())
	require.Equal(t, 4, regions[1].Sides())
}

func TestSides(t *testing.T) {
	tests := []struct {
		in   string
		want int // sides of the region containing 0,0
	}{
		{"A", 4},
		{"AA", 4},
		{"A\nA", 4},
		{"AAA\nA.A\nAAA", 8},
		{"AAAAA\nA.A.A\nAAAAA", 12},
		{"AA\nA.", 6},
	}
	for _, tt := range tests {
		r := FindRegions(MustGet(ParseRunes(tt.in)))[0]
		if got := r.Sides(); got != tt.want {
			t.Errorf("Sides(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFindRegionsIdempotent(t *testing.T) {
	a := FindRegions(MustGet(ParseRunes(largeGarden)))
	b := FindRegions(MustGet(ParseRunes(largeGarden)))
	require.Equal(t, a, b)
}

// corners counts the convex and concave corners of the region's boundary,
// which equals its number of sides.
func corners(r *Region[rune]) int {
	in := make(map[Pt]bool, len(r.Cells))
	for _, p := range r.Cells {
		in[p] = true
	}
	n := 0
	for _, p := range r.Cells {
		for _, d := range Directions {
			a, b := p.Move(d), p.Move(d.Right())
			switch {
			case !in[a] && !in[b]:
				n++
			case in[a] && in[b] && !in[a.Move(d.Right())]:
				n++
			}
		}
	}
	return n
}

// exposedEdges counts the cell edges not shared with another cell of the
// region.
func exposedEdges(r *Region[rune]) int {
	in := make(map[Pt]bool, len(r.Cells))
	for _, p := range r.Cells {
		in[p] = true
	}
	n := 0
	for _, p := range r.Cells {
		for _, d := range Directions {
			if !in[p.Move(d)] {
				n++
			}
		}
	}
	return n
}

func TestSidesRandomGrids(t *testing.T) {
	rng := rand.New(rand.NewPCG(2024, 12))
	for i := range 5000 {
		w, h := 1+rng.IntN(7), 1+rng.IntN(7)
		g := MakeGrid[rune](w, h)
		g.All(func(p Pt, _ rune) bool {
			g.Set(p, rune('A'+rng.IntN(2)))
			return true
		})
		area := 0
		for _, r := range FindRegions(g) {
			area += r.Area()
			if got, want := r.Sides(), corners(r); got != want {
				t.Fatalf("grid %d %v: region %c at %v has %d sides, want %d", i, g, r.Label, r.Cells[0], got, want)
			}
			if got, want := r.Perimeter, exposedEdges(r); got != want {
				t.Fatalf("grid %d %v: region %c at %v has perimeter %d, want %d", i, g, r.Label, r.Cells[0], got, want)
			}
		}
		if area != w*h {
			t.Fatalf("grid %d: regions cover %d cells, want %d", i, area, w*h)
		}
	}
}
