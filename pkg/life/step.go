package life

// Step advances the board by one generation.
func (b *Board) Step() {
	b.live = b.next(nil)
}

// Advance applies Step n times.
func (b *Board) Advance(n int) {
	for i := 0; i < n; i++ {
		b.Step()
	}
}

// next computes the following generation. Only live cells and their immediate
// neighborhoods are visited; each dead neighbor is scanned at most once, and
// evaluated (when non-nil) is called for every such scan.
func (b *Board) next(evaluated func(Cell)) map[Cell]struct{} {
	next := make(map[Cell]struct{}, len(b.live))
	seen := make(map[Cell]struct{})

	for c := range b.live {
		count := 0
		for _, n := range b.neighbors(c) {
			if b.Alive(n) {
				count++
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			if evaluated != nil {
				evaluated(n)
			}
			if rule(false, b.liveNeighbors(n)) {
				next[n] = struct{}{}
			}
		}
		if rule(true, count) {
			next[c] = struct{}{}
		}
	}
	return next
}

// neighbors returns the eight wrapped positions around c. On boards with a
// dimension of two or less some positions repeat or land on c itself.
func (b *Board) neighbors(c Cell) [8]Cell {
	rows := wrapRange(c.Row, b.rows)
	cols := wrapRange(c.Col, b.cols)

	var out [8]Cell
	n := 0
	for i, r := range rows {
		for j, col := range cols {
			if i == 1 && j == 1 {
				continue
			}
			out[n] = Cell{Row: r, Col: col}
			n++
		}
	}
	return out
}

func (b *Board) liveNeighbors(c Cell) int {
	count := 0
	for _, n := range b.neighbors(c) {
		if b.Alive(n) {
			count++
		}
	}
	return count
}

// rule is Conway's B3/S23 transition.
func rule(alive bool, neighbors int) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}
