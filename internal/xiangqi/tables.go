package xiangqi

// 预计算的走法表。只依赖棋盘几何，init 时生成一次，之后只读。
var (
	kingTable    [NumCells]BitAtom
	advisorTable [NumCells]BitAtom
	bishopTable  [NumCells][16]BitAtom // [格][象眼状态]
	knightTable  [NumCells][16]BitAtom // [格][马腿状态]
	pawnTable    [2][NumCells]BitAtom  // [物理方位][格]

	// 盘边外的邻格视为“已堵”，查询时与真实占位按位或
	orthWall [NumCells]uint8
	diagWall [NumCells]uint8

	// 车/炮：行表按 9 位行状态索引，列表按旋转后的 10 位列状态索引
	rookRowTable   [Cols][1 << Cols]uint16
	rookColTable   [Rows][1 << Rows]uint16
	cannonRowTable [Cols][1 << Cols]uint16
	cannonColTable [Rows][1 << Rows]uint16

	// 列表结果（行号位图）展开成 BitAtom
	fileSpread [Cols][1 << Rows]BitAtom
)

func init() {
	initWalls()
	initKingAdvisorTables()
	initBishopTables()
	initKnightTables()
	initPawnTables()
	initSlideTables()
}

// mirrorRow 把下方的行号翻成以己方底线为 0 的行号
func mirrorRow(row int) int {
	if sideOfRow(row) == Bottom {
		return Rows - 1 - row
	}
	return row
}

func kingPut(row, col int) bool {
	_, ok := palaceSide(row, col)
	return ok
}

func advisorPut(row, col int) bool {
	if !kingPut(row, col) {
		return false
	}
	return (mirrorRow(row)+col)%2 == 1
}

func bishopPut(row, col int) bool {
	r := mirrorRow(row)
	if r%2 != 0 || col%2 != 0 {
		return false
	}
	return (r/2+col/2)%2 == 1
}

func initWalls() {
	for i := 0; i < NumCells; i++ {
		row, col := rowOf(i), colOf(i)
		for d := 0; d < 4; d++ {
			if !onBoard(row+orthDirs[d][0], col+orthDirs[d][1]) {
				orthWall[i] |= 1 << uint(d)
			}
			if !onBoard(row+diagDirs[d][0], col+diagDirs[d][1]) {
				diagWall[i] |= 1 << uint(d)
			}
		}
	}
}

// 帅：九宫内上下左右一格；仕：九宫内斜走一格
func initKingAdvisorTables() {
	for i := 0; i < NumCells; i++ {
		row, col := rowOf(i), colOf(i)
		side, ok := palaceSide(row, col)
		if !ok {
			continue
		}
		for _, d := range orthDirs {
			r, c := row+d[0], col+d[1]
			if s, in := palaceSide(r, c); in && s == side {
				kingTable[i] = kingTable[i].With(indexOf(r, c))
			}
		}
		if !advisorPut(row, col) {
			continue
		}
		for _, d := range diagDirs {
			r, c := row+d[0], col+d[1]
			if s, in := palaceSide(r, c); in && s == side {
				advisorTable[i] = advisorTable[i].With(indexOf(r, c))
			}
		}
	}
}

// 相：田字，象眼被堵不能走，不过河
func initBishopTables() {
	for i := 0; i < NumCells; i++ {
		row, col := rowOf(i), colOf(i)
		if !bishopPut(row, col) {
			continue
		}
		for state := 0; state < 16; state++ {
			var m BitAtom
			for d, dir := range diagDirs {
				if state&(1<<uint(d)) != 0 {
					continue
				}
				r, c := row+2*dir[0], col+2*dir[1]
				if !onBoard(r, c) || sideOfRow(r) != sideOfRow(row) {
					continue
				}
				m = m.With(indexOf(r, c))
			}
			bishopTable[i][state] = m
		}
	}
}

// knightDeltas 列出 8 个日字终点以及对应马腿所在的正交方向
var knightDeltas = func() (out [8]struct{ dr, dc, leg int }) {
	n := 0
	for dr := -2; dr <= 2; dr++ {
		for dc := -2; dc <= 2; dc++ {
			if abs(dr)+abs(dc) != 3 {
				continue
			}
			var lr, lc int
			if abs(dr) == 2 {
				lr = dr / 2
			} else {
				lc = dc / 2
			}
			for d, dir := range orthDirs {
				if dir[0] == lr && dir[1] == lc {
					out[n] = struct{ dr, dc, leg int }{dr, dc, d}
				}
			}
			n++
		}
	}
	return out
}()

// 马：日字，马腿被堵不能走
func initKnightTables() {
	for i := 0; i < NumCells; i++ {
		row, col := rowOf(i), colOf(i)
		for state := 0; state < 16; state++ {
			var m BitAtom
			for _, k := range knightDeltas {
				if state&(1<<uint(k.leg)) != 0 {
					continue
				}
				r, c := row+k.dr, col+k.dc
				if onBoard(r, c) {
					m = m.With(indexOf(r, c))
				}
			}
			knightTable[i][state] = m
		}
	}
}

// 兵：向前一格；过河后可左右一格
func initPawnTables() {
	for _, side := range [2]Side{Bottom, Top} {
		dir := pawnDir(side)
		for i := 0; i < NumCells; i++ {
			row, col := rowOf(i), colOf(i)
			var m BitAtom
			if onBoard(row+dir, col) {
				m = m.With(indexOf(row+dir, col))
			}
			if pawnCrossed(side, row) {
				for _, dc := range [2]int{-1, +1} {
					if onBoard(row, col+dc) {
						m = m.With(indexOf(row, col+dc))
					}
				}
			}
			pawnTable[side][i] = m
		}
	}
}

// matchValue 在一条长 n 的线上，从 pos 向两侧扫描 state 给出的占位。
// 车：直到并包含第一个有子的格。
// 炮：第一个有子的格是炮架；炮架之前的空格可走，炮架之后的第一个有子格可吃。
func matchValue(pos int, state uint, n int, cannon bool) uint16 {
	var out uint16
	for _, step := range [2]int{-1, +1} {
		screened := false
	scan:
		for i := pos + step; i >= 0 && i < n; i += step {
			bit := uint16(1) << uint(i)
			occupied := state&uint(bit) != 0
			switch {
			case !cannon:
				out |= bit
				if occupied {
					break scan
				}
			case !screened:
				if occupied {
					screened = true
				} else {
					out |= bit
				}
			case occupied:
				out |= bit
				break scan
			}
		}
	}
	return out
}

func initSlideTables() {
	for pos := 0; pos < Cols; pos++ {
		for state := uint(0); state < 1<<Cols; state++ {
			rookRowTable[pos][state] = matchValue(pos, state, Cols, false)
			cannonRowTable[pos][state] = matchValue(pos, state, Cols, true)
		}
	}
	for pos := 0; pos < Rows; pos++ {
		for state := uint(0); state < 1<<Rows; state++ {
			rookColTable[pos][state] = matchValue(pos, state, Rows, false)
			cannonColTable[pos][state] = matchValue(pos, state, Rows, true)
		}
	}
	for col := 0; col < Cols; col++ {
		for m := 0; m < 1<<Rows; m++ {
			var a BitAtom
			for row := 0; row < Rows; row++ {
				if m&(1<<uint(row)) != 0 {
					a = a.With(indexOf(row, col))
				}
			}
			fileSpread[col][m] = a
		}
	}
}
