package aoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// gridSearch is a unit-cost search over the open cells of g.
func gridSearch(g Grid[rune], start, end Pt, allPaths bool) Search[Pt] {
	return Search[Pt]{
		Start: start,
		Goal:  func(p Pt) bool { return p == end },
		Next: func(p Pt, edge func(Pt, int)) {
			p.ForImmediateNeighbors(func(n Pt) bool {
				if v, ok := g.AtOk(n); ok && v != '#' {
					edge(n, 1)
				}
				return true
			})
		},
		AllPaths: allPaths,
	}
}

// bfs returns the number of steps from start to every reachable open cell.
func bfs(g Grid[rune], start Pt) map[Pt]int {
	dist := map[Pt]int{start: 0}
	q := NewQueue(start)
	q.While(func(p Pt) bool {
		p.ForImmediateNeighbors(func(n Pt) bool {
			if v, ok := g.AtOk(n); !ok || v == '#' {
				return true
			}
			if _, ok := dist[n]; !ok {
				dist[n] = dist[p] + 1
				q.Push(n)
			}
			return true
		})
		return true
	})
	return dist
}

var searchGrids = []string{
	`.....
.###.
...#.
.#...
.#.#.`,
	`..#....
#.#.##.
..#..#.
.##.#..
....#.#
.#....#
...##..`,
	`.`,
	`...
...
...`,
}

func TestSearchMatchesBFS(t *testing.T) {
	for _, in := range searchGrids {
		g := MustGet(ParseRunes(in))
		size := g.Size()
		dist := bfs(g, Pt{})
		g.All(func(end Pt, v rune) bool {
			if v == '#' {
				return true
			}
			res, err := gridSearch(g, Pt{}, end, false).Run()
			want, reachable := dist[end]
			if !reachable {
				require.ErrorIs(t, err, ErrUnreachable, "grid %v end %v", size, end)
				return true
			}
			require.NoError(t, err)
			if res.Cost != want {
				t.Errorf("cost to %v = %d, want %d\n%s", end, res.Cost, want, in)
			}
			if path := res.Path(); len(path) != want+1 || path[0] != (Pt{}) || path[len(path)-1] != end {
				t.Errorf("Path to %v = %v", end, path)
			}
			return true
		})
	}
}

func TestSearchUnreachable(t *testing.T) {
	g := MustGet(ParseRunes("..#..\n..#..\n..#.."))
	_, err := gridSearch(g, Pt{}, Pt{4, 2}, false).Run()
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestSearchAllPaths(t *testing.T) {
	// Every cell of an open square is on some shortest corner-to-corner path.
	g := MustGet(ParseRunes("...\n...\n..."))
	res, err := gridSearch(g, Pt{}, Pt{2, 2}, true).Run()
	require.NoError(t, err)
	require.Equal(t, 4, res.Cost)
	require.Len(t, res.OnBestPaths(), 9)

	// Only the bottom corridor is shortest.
	g = MustGet(ParseRunes(".....\n.###.\n.###.\n....."))
	res, err = gridSearch(g, Pt{0, 3}, Pt{4, 3}, true).Run()
	require.NoError(t, err)
	require.Equal(t, 4, res.Cost)
	on := res.OnBestPaths()
	require.Len(t, on, 5)
	for x := range 5 {
		require.True(t, on[Pt{x, 3}])
	}
}

func TestSearchWeighted(t *testing.T) {
	// a -> b -> d costs 1+5, a -> c -> d costs 2+2.
	edges := map[string]map[string]int{
		"a": {"b": 1, "c": 2},
		"b": {"d": 5},
		"c": {"d": 2},
	}
	s := Search[string]{
		Start: "a",
		Goal:  func(s string) bool { return s == "d" },
		Next: func(s string, edge func(string, int)) {
			for n, w := range edges[s] {
				edge(n, w)
			}
		},
		AllPaths: true,
	}
	res, err := s.Run()
	require.NoError(t, err)
	require.Equal(t, 4, res.Cost)
	require.Equal(t, []string{"a", "c", "d"}, res.Path())
	require.Equal(t, map[string]bool{"a": true, "c": true, "d": true}, res.OnBestPaths())

	// Tie: both routes cost 4.
	edges["b"]["d"] = 3
	res, err = s.Run()
	require.NoError(t, err)
	require.Equal(t, 4, res.Cost)
	require.Len(t, res.OnBestPaths(), 4)
}

func TestSearchNegativeCost(t *testing.T) {
	s := Search[int]{
		Start: 0,
		Goal:  func(n int) bool { return n == 3 },
		Next: func(n int, edge func(int, int)) {
			edge(n+1, 1)
			if n == 1 {
				edge(0, -2)
			}
		},
	}
	_, err := s.Run()
	require.ErrorIs(t, err, ErrNegativeCost)
}
