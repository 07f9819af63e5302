// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package fox

import "math"

// DrawRect fills the rectangle with top-left corner (x, y), clipped to the
// buffer. Non-positive sizes draw nothing.
func (c *Canvas) DrawRect(x, y, width, height int, col Color) {
	if width <= 0 || height <= 0 {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(end(x, width), c.width), min(end(y, height), c.height)

	for j := y0; j < y1; j++ {
		for i := x0; i < x1; i++ {
			c.setPixelUnsafe(i, j, col)
		}
	}
}

// DrawRectOutline draws a one-pixel border around the rectangle with
// top-left corner (x, y). Edges lying outside the buffer are skipped, so a
// rectangle that runs off the screen loses its far edges rather than
// growing new ones at the screen border.
func (c *Canvas) DrawRectOutline(x, y, width, height int, col Color) {
	if width <= 0 || height <= 0 {
		return
	}
	right, bottom := end(x, width)-1, end(y, height)-1
	x0, x1 := max(x, 0), min(right, c.width-1)
	y0, y1 := max(y, 0), min(bottom, c.height-1)
	if x0 > x1 || y0 > y1 {
		return
	}

	top := y >= 0
	bot := bottom < c.height
	left := x >= 0
	rgt := right < c.width

	for i := x0; i <= x1; i++ {
		if top {
			c.setPixelUnsafe(i, y, col)
		}
		if bot {
			c.setPixelUnsafe(i, bottom, col)
		}
	}
	for j := y0; j <= y1; j++ {
		if left {
			c.setPixelUnsafe(x, j, col)
		}
		if rgt {
			c.setPixelUnsafe(right, j, col)
		}
	}
}

// DrawLine draws a line from (x1, y1) to (x2, y2), both ends inclusive,
// using Bresenham's algorithm. Pixels outside the buffer are skipped.
func (c *Canvas) DrawLine(x1, y1, x2, y2 int, col Color) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}
	err := dx - dy

	for {
		c.SetPixel(x1, y1, col)
		if x1 == x2 && y1 == y2 {
			return
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawCircleOutline draws the outline of a circle centred on (cx, cy) with
// the midpoint circle algorithm. A zero radius plots the centre; a negative
// radius draws nothing.
func (c *Canvas) DrawCircleOutline(cx, cy, r int, col Color) {
	if r < 0 {
		return
	}
	c.SetPixel(cx, cy+r, col)
	c.SetPixel(cx, cy-r, col)
	c.SetPixel(cx+r, cy, col)
	c.SetPixel(cx-r, cy, col)

	midpointCircle(r, func(x, y int) {
		c.SetPixel(cx+x, cy+y, col)
		c.SetPixel(cx-x, cy+y, col)
		c.SetPixel(cx+x, cy-y, col)
		c.SetPixel(cx-x, cy-y, col)

		c.SetPixel(cx+y, cy+x, col)
		c.SetPixel(cx-y, cy+x, col)
		c.SetPixel(cx+y, cy-x, col)
		c.SetPixel(cx-y, cy-x, col)
	})
}

// DrawCircle fills a disk centred on (cx, cy). Every row is a horizontal
// span between two symmetric outline points, so the disk covers exactly the
// pixels on and inside DrawCircleOutline with the same radius.
func (c *Canvas) DrawCircle(cx, cy, r int, col Color) {
	if r < 0 {
		return
	}
	c.hspan(cx-r, cx+r, cy, col)
	c.SetPixel(cx, cy+r, col)
	c.SetPixel(cx, cy-r, col)

	midpointCircle(r, func(x, y int) {
		c.hspan(cx-x, cx+x, cy+y, col)
		c.hspan(cx-x, cx+x, cy-y, col)
		c.hspan(cx-y, cx+y, cy+x, col)
		c.hspan(cx-y, cx+y, cy-x, col)
	})
}

// midpointCircle walks the second octant of a circle of radius r, calling
// plot with each offset (x, y), x < y on entry. The four axis points are not
// visited.
func midpointCircle(r int, plot func(x, y int)) {
	f := 1 - r
	ddFx := 0
	ddFy := -2 * r
	x, y := 0, r

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx + 1

		plot(x, y)
	}
}

// hspan fills row y from xa to xb inclusive, clipped to the buffer.
func (c *Canvas) hspan(xa, xb, y int, col Color) {
	if y < 0 || y >= c.height {
		return
	}
	xa, xb = max(xa, 0), min(xb, c.width-1)
	for x := xa; x <= xb; x++ {
		c.setPixelUnsafe(x, y, col)
	}
}

// end returns start+size (size > 0), saturating at math.MaxInt.
func end(start, size int) int {
	if start > math.MaxInt-size {
		return math.MaxInt
	}
	return start + size
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
