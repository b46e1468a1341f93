package preview

// dotBits holds the bit of each dot of a braille cell, indexed by row
// and column of the 2x4 dot matrix.
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// dots is a grid of braille cells addressed by dot coordinates.
type dots struct {
	cols, rows int       // in cells
	cells      [][]uint8 // dot mask per cell
}

func newDots(cols, rows int) *dots {
	cells := make([][]uint8, rows)
	for i := range cells {
		cells[i] = make([]uint8, cols)
	}
	return &dots{cols: cols, rows: rows, cells: cells}
}

// width and height in dots.
func (d *dots) width() int  { return 2 * d.cols }
func (d *dots) height() int { return 4 * d.rows }

// set sets the dot (x,y); dots outside the grid are ignored.
func (d *dots) set(x, y int) {
	if x < 0 || y < 0 || x >= d.width() || y >= d.height() {
		return
	}
	d.cells[y/4][x/2] |= dotBits[y%4][x%2]
}

func (d *dots) isSet(x, y int) bool {
	if x < 0 || y < 0 || x >= d.width() || y >= d.height() {
		return false
	}
	return d.cells[y/4][x/2]&dotBits[y%4][x%2] != 0
}

// line sets all dots on the line from (x0,y0) to (x1,y1) (Bresenham).
func (d *dots) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		d.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// lines renders the grid, one string per cell row. Empty cells are blanks.
func (d *dots) lines() []string {
	out := make([]string, d.rows)
	for y, row := range d.cells {
		runes := make([]rune, len(row))
		for x, mask := range row {
			if mask == 0 {
				runes[x] = ' '
			} else {
				runes[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(runes)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
