package line

// github.com/StephaneBunel/bresenham/blob/master/drawline.go

// Plotter accepts pixels along a rasterized line together with the
// height value being painted.
type Plotter interface {
	Set(x int, y int, v float64)
}

// Generalized with integer
func bresenham(p Plotter, x1, y1, x2, y2 int, v float64) {
	var dx, dy, e, slope int

	// Because drawing p1 -> p2 is equivalent to draw p2 -> p1,
	// I sort points in x-axis order to handle only half of possible cases.
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, dy = x2-x1, y2-y1
	// Because point is x-axis ordered, dx cannot be negative
	if dy < 0 {
		dy = -dy
	}

	switch {

	// Is line a point ?
	case x1 == x2 && y1 == y2:
		p.Set(x1, y1, v)

	// Is line an horizontal ?
	case y1 == y2:
		for ; dx != 0; dx-- {
			p.Set(x1, y1, v)
			x1++
		}
		p.Set(x1, y1, v)

	// Is line a vertical ?
	case x1 == x2:
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for ; dy != 0; dy-- {
			p.Set(x1, y1, v)
			y1++
		}
		p.Set(x1, y1, v)

	// Is line a diagonal ?
	case dx == dy:
		if y1 < y2 {
			for ; dx != 0; dx-- {
				p.Set(x1, y1, v)
				x1++
				y1++
			}
		} else {
			for ; dx != 0; dx-- {
				p.Set(x1, y1, v)
				x1++
				y1--
			}
		}
		p.Set(x1, y1, v)

	// wider than high ?
	case dx > dy:
		if y1 < y2 {
			// BresenhamDxXRYD(img, x1, y1, x2, y2, col)
			dy, e, slope = 2*dy, dx, 2*dx
			for ; dx != 0; dx-- {
				p.Set(x1, y1, v)
				x1++
				e -= dy
				if e < 0 {
					y1++
					e += slope
				}
			}
		} else {
			// BresenhamDxXRYU(img, x1, y1, x2, y2, col)
			dy, e, slope = 2*dy, dx, 2*dx
			for ; dx != 0; dx-- {
				p.Set(x1, y1, v)
				x1++
				e -= dy
				if e < 0 {
					y1--
					e += slope
				}
			}
		}
		p.Set(x2, y2, v)

	// higher than wide.
	default:
		if y1 < y2 {
			// BresenhamDyXRYD(img, x1, y1, x2, y2, col)
			dx, e, slope = 2*dx, dy, 2*dy
			for ; dy != 0; dy-- {
				p.Set(x1, y1, v)
				y1++
				e -= dx
				if e < 0 {
					x1++
					e += slope
				}
			}
		} else {
			// BresenhamDyXRYU(img, x1, y1, x2, y2, col)
			dx, e, slope = 2*dx, dy, 2*dy
			for ; dy != 0; dy-- {
				p.Set(x1, y1, v)
				y1--
				e -= dx
				if e < 0 {
					x1++
					e += slope
				}
			}
		}
		p.Set(x2, y2, v)
	}
}
