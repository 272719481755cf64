package life

import "fmt"

// Cell is a grid position. Cells compare by value and are used directly as set keys.
type Cell struct {
	Row int
	Col int
}

// String formats the cell as "row,col", the same shape the coords pattern format uses.
func (c Cell) String() string { return fmt.Sprintf("%d,%d", c.Row, c.Col) }

// wrapRange returns the previous, same and next index of i in a dimension of size n.
func wrapRange(i, n int) [3]int {
	prev, next := i-1, i+1
	if i == 0 {
		prev = n - 1
	}
	if i == n-1 {
		next = 0
	}
	return [3]int{prev, i, next}
}
