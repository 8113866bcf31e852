package aoc

import (
	"cmp"
	"slices"
)

// Region is a maximal 4-connected set of cells sharing a label.
type Region[T comparable] struct {
	Label T
	Cells []Pt
	// Perimeter is the number of cell edges not shared with another cell
	// of the region.
	Perimeter int
}

func (r *Region[T]) Area() int {
	return len(r.Cells)
}

// FindRegions partitions g into regions in a single row-major scan. Each
// cell only looks at its neighbors above and to the left; when both belong
// to different partial regions those regions are merged. Regions are
// returned in the order their first cell appears in the grid.
func FindRegions[T comparable](g Grid[T]) []*Region[T] {
	size := g.Size()
	ids := MakeGrid[int](size.X, size.Y)
	regions := make(map[int]*Region[T])
	next := 0
	g.All(func(p Pt, v T) bool {
		perimeter := 4
		id := -1
		if up := p.Move(North); p.Y > 0 && g.At(up) == v {
			perimeter -= 2 // one edge for p, one for up
			id = ids.At(up)
		}
		if left := p.Move(West); p.X > 0 && g.At(left) == v {
			perimeter -= 2
			lid := ids.At(left)
			if id == -1 {
				id = lid
			} else if id != lid {
				id = mergeRegions(regions, ids, id, lid)
			}
		}
		if id == -1 {
			id = next
			next++
			regions[id] = &Region[T]{Label: v}
		}
		ids.Set(p, id)
		r := regions[id]
		r.Cells = append(r.Cells, p)
		r.Perimeter += perimeter
		return true
	})

	out := make([]*Region[T], 0, len(regions))
	seen := make(map[int]bool, len(regions))
	ids.All(func(_ Pt, id int) bool {
		if !seen[id] {
			seen[id] = true
			out = append(out, regions[id])
		}
		return true
	})
	return out
}

// mergeRegions folds the smaller of regions a and b into the larger one and
// returns the id of the survivor.
func mergeRegions[T comparable](regions map[int]*Region[T], ids Grid[int], a, b int) int {
	if len(regions[a].Cells) < len(regions[b].Cells) {
		a, b = b, a
	}
	keep, drop := regions[a], regions[b]
	for _, p := range drop.Cells {
		ids.Set(p, a)
	}
	keep.Cells = append(keep.Cells, drop.Cells...)
	keep.Perimeter += drop.Perimeter
	delete(regions, b)
	return a
}

// Sides returns the number of straight sides of the region's boundary,
// including the boundaries of any holes.
func (r *Region[T]) Sides() int {
	in := make(map[Pt]bool, len(r.Cells))
	for _, p := range r.Cells {
		in[p] = true
	}
	cells := slices.Clone(r.Cells)
	slices.SortFunc(cells, func(a, b Pt) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})

	// The first exposed top in row-major order is on the outer boundary;
	// every exposed top not visited by an earlier walk seeds a hole.
	walked := make(map[Pt]bool)
	sides := 0
	for _, p := range cells {
		if walked[p] || in[p.Move(North)] {
			continue
		}
		sides += traceBoundary(p, in, walked)
	}
	return sides
}

// traceBoundary walks the boundary that runs along the top edge of start,
// keeping the outside on its left, and returns the number of turns made.
// Every cell whose top edge is walked is recorded in tops.
func traceBoundary(start Pt, in map[Pt]bool, tops map[Pt]bool) int {
	cur := Pose{Pt: start, Dir: East}
	tops[start] = true
	turns := 0
	for {
		left := cur.Dir.Left()
		switch {
		case in[cur.Pt.Move(left)]:
			cur = Pose{Pt: cur.Pt.Move(left), Dir: left}
			turns++
		case in[cur.Pt.Move(cur.Dir)]:
			cur = cur.Forward()
		default:
			cur.Dir = cur.Dir.Right()
			turns++
		}
		if cur.Dir == East && !in[cur.Pt.Move(North)] {
			tops[cur.Pt] = true
		}
		if cur.Pt == start && cur.Dir == East {
			return turns
		}
	}
}

// Price sums area times perimeter over the regions, or area times the
// number of sides if bySides is set.
func Price[T comparable](regions []*Region[T], bySides bool) int {
	total := 0
	for _, r := range regions {
		if bySides {
			total += r.Area() * r.Sides()
		} else {
			total += r.Area() * r.Perimeter
		}
	}
	return total
}
