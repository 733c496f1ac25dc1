package ui

// Coord addresses a character cell: zero-based line (row) and column.
// Also used for extents, where Line is a height and Col a width.
type Coord struct {
	Line int
	Col  int
}

func (c Coord) Add(o Coord) Coord {
	return Coord{Line: c.Line + o.Line, Col: c.Col + o.Col}
}

func (c Coord) Sub(o Coord) Coord {
	return Coord{Line: c.Line - o.Line, Col: c.Col - o.Col}
}
