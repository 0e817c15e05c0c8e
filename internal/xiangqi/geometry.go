package xiangqi

import "golang.org/x/exp/constraints"

const (
	Rows     = 10
	Cols     = 9
	NumCells = Rows * Cols

	// 河界：0..4 为上半场，5..9 为下半场
	RiverRow = 5
)

// 棋盘的物理方位：下方那一方从第 9 行开始摆
type Side int8

const (
	Bottom Side = 0
	Top    Side = 1
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(i int) int          { return i / Cols }
func colOf(i int) int          { return i % Cols }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// rotatedIndex: row*9+col -> col*10+row
func rotatedIndex(i int) int { return colOf(i)*Rows + rowOf(i) }

func sideOfRow(row int) Side {
	if row >= RiverRow {
		return Bottom
	}
	return Top
}

// 是否在九宫，返回九宫所属的一侧
func palaceSide(row, col int) (Side, bool) {
	if !onBoard(row, col) || col < 3 || col > 5 {
		return Bottom, false
	}
	switch {
	case row <= 2:
		return Top, true
	case row >= 7:
		return Bottom, true
	}
	return Bottom, false
}

// 兵的前进方向：下方向上(-1)，上方向下(+1)
func pawnDir(s Side) int {
	if s == Bottom {
		return -1
	}
	return +1
}

// 是否已经过河
func pawnCrossed(s Side, row int) bool {
	return sideOfRow(row) != s
}

var (
	orthDirs = [4][2]int{{-1, 0}, {0, +1}, {+1, 0}, {0, -1}}
	diagDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, +1}, {+1, -1}}
)

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
