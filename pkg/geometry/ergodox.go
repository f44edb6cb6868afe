// Package geometry maps the ErgoDox EZ firmware key indices to grid
// positions. The table describes exactly one physical board; another board
// needs another table.
package geometry

type Hand string

const (
	Left  Hand = "L"
	Right Hand = "R"
)

// Count is the number of physical keys on the board.
const Count = 76

// Columns is the width of the combined grid, both halves side by side.
const Columns = 14

// Rows is the height of the grid.
const Rows = 6

type Position struct {
	Row    int
	Column int
	Hand   Hand
}

var ergodox = [Count]Position{
	// left hand
	{0, 0, Left}, {0, 1, Left}, {0, 2, Left}, {0, 3, Left}, {0, 4, Left}, {0, 5, Left}, {0, 6, Left},
	{1, 0, Left}, {1, 1, Left}, {1, 2, Left}, {1, 3, Left}, {1, 4, Left}, {1, 5, Left}, {1, 6, Left},
	{2, 0, Left}, {2, 1, Left}, {2, 2, Left}, {2, 3, Left}, {2, 4, Left}, {2, 5, Left},
	{3, 0, Left}, {3, 1, Left}, {3, 2, Left}, {3, 3, Left}, {3, 4, Left}, {3, 5, Left}, {3, 6, Left},
	{4, 0, Left}, {4, 1, Left}, {4, 2, Left}, {4, 3, Left}, {4, 4, Left},
	{5, 0, Left}, {5, 1, Left}, {5, 2, Left}, {5, 3, Left}, {5, 4, Left}, {5, 5, Left},

	// right hand
	{0, 7, Right}, {0, 8, Right}, {0, 9, Right}, {0, 10, Right}, {0, 11, Right}, {0, 12, Right}, {0, 13, Right},
	{1, 7, Right}, {1, 8, Right}, {1, 9, Right}, {1, 10, Right}, {1, 11, Right}, {1, 12, Right}, {1, 13, Right},
	{2, 8, Right}, {2, 9, Right}, {2, 10, Right}, {2, 11, Right}, {2, 12, Right}, {2, 13, Right},
	{3, 7, Right}, {3, 8, Right}, {3, 9, Right}, {3, 10, Right}, {3, 11, Right}, {3, 12, Right}, {3, 13, Right},
	{4, 9, Right}, {4, 10, Right}, {4, 11, Right}, {4, 12, Right}, {4, 13, Right},
	{5, 8, Right}, {5, 9, Right}, {5, 10, Right}, {5, 11, Right}, {5, 12, Right}, {5, 13, Right},
}

// Lookup returns the grid position of a firmware key index. Indices outside
// the board report false.
func Lookup(index int) (Position, bool) {
	if index < 0 || index >= Count {
		return Position{}, false
	}
	return ergodox[index], true
}

// All returns the positions in firmware index order.
func All() []Position {
	out := make([]Position, Count)
	copy(out, ergodox[:])
	return out
}
