package web

import (
	"iter"
	"math"

	"github.com/kamstrup/intmap"
)

// Cell identifies a square region of the plane by its floor-divided coordinates.
type Cell struct {
	X, Y int
}

// key packs the cell into a single integer so it can be used with intmap.
// Coordinates are truncated to 32 bits each.
func (c Cell) key() uint64 {
	return uint64(uint32(int32(c.X)))<<32 | uint64(uint32(int32(c.Y)))
}

// SpatialIndex buckets points by the cell they currently occupy so that
// neighbor lookups only touch the surrounding 3x3 block of cells.
type SpatialIndex struct {
	size  float64
	cells *intmap.Map[uint64, []*Point]
	count int
}

// NewSpatialIndex creates an empty index with square cells of the given size.
func NewSpatialIndex(cellSize float64) *SpatialIndex {
	return &SpatialIndex{
		size:  cellSize,
		cells: intmap.New[uint64, []*Point](256),
	}
}

// CellAt returns the cell containing (x, y). Negative coordinates map to
// negative cells.
func (s *SpatialIndex) CellAt(x, y float64) Cell {
	return Cell{
		X: int(math.Floor(x / s.size)),
		Y: int(math.Floor(y / s.size)),
	}
}

// Insert adds p to the cell matching its current position and records that
// cell on the point. A point that is already indexed is moved instead.
func (s *SpatialIndex) Insert(p *Point) {
	if p.indexed {
		s.Remove(p)
	}

	cell := s.CellAt(p.X, p.Y)
	k := cell.key()
	bucket, _ := s.cells.Get(k)
	s.cells.Put(k, append(bucket, p))

	p.cell = cell
	p.indexed = true
	s.count++
}

// Relocate moves p to the cell matching its current position. It reports
// whether the point changed cells.
func (s *SpatialIndex) Relocate(p *Point) bool {
	cell := s.CellAt(p.X, p.Y)
	if p.indexed && cell == p.cell {
		return false
	}
	s.Insert(p)
	return true
}

// Remove takes p out of its recorded cell. Removing a point that is not in
// that cell is a no-op and reports false.
func (s *SpatialIndex) Remove(p *Point) bool {
	if !p.indexed {
		return false
	}
	p.indexed = false

	k := p.cell.key()
	bucket, ok := s.cells.Get(k)
	if !ok {
		return false
	}

	for i, q := range bucket {
		if q != p {
			continue
		}
		last := len(bucket) - 1
		bucket[i] = bucket[last]
		bucket[last] = nil
		bucket = bucket[:last]
		if len(bucket) == 0 {
			s.cells.Del(k)
		} else {
			s.cells.Put(k, bucket)
		}
		s.count--
		return true
	}
	return false
}

// Clear drops every cell. Points that were indexed keep their recorded cell
// but are no longer considered members.
func (s *SpatialIndex) Clear() {
	s.cells.ForEach(func(_ uint64, bucket []*Point) bool {
		for _, p := range bucket {
			p.indexed = false
		}
		return true
	})
	s.cells.Clear()
	s.count = 0
}

// At returns the points currently assigned to cell c. The slice is owned by
// the index and must not be modified.
func (s *SpatialIndex) At(c Cell) []*Point {
	bucket, _ := s.cells.Get(c.key())
	return bucket
}

// Neighborhood yields every point in the 3x3 block of cells centered on c.
func (s *SpatialIndex) Neighborhood(c Cell) iter.Seq[*Point] {
	return func(yield func(*Point) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for _, p := range s.At(Cell{X: c.X + dx, Y: c.Y + dy}) {
					if !yield(p) {
						return
					}
				}
			}
		}
	}
}

// Len returns the number of indexed points.
func (s *SpatialIndex) Len() int {
	return s.count
}

// Cells returns the number of non-empty cells.
func (s *SpatialIndex) Cells() int {
	return s.cells.Len()
}
