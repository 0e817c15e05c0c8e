package xiangqi

// legState 取一个格子四个邻格的占位；盘外的邻格算作已堵
func (p *Position) legState(i int, dirs *[4][2]int, wall uint8) int {
	row, col := rowOf(i), colOf(i)
	state := int(wall)
	for d, dir := range dirs {
		r, c := row+dir[0], col+dir[1]
		if onBoard(r, c) && p.all.Has(indexOf(r, c)) {
			state |= 1 << uint(d)
		}
	}
	return state
}

func (p *Position) rookMoves(i int) BitAtom {
	row, col := rowOf(i), colOf(i)
	horiz := rookRowTable[col][p.all.rowState(row)]
	vert := rookColTable[row][p.rotated.colState(col)]
	return fieldAtom(uint64(horiz), uint(row*Cols)).Or(fileSpread[col][vert])
}

func (p *Position) cannonMoves(i int) BitAtom {
	row, col := rowOf(i), colOf(i)
	horiz := cannonRowTable[col][p.all.rowState(row)]
	vert := cannonColTable[row][p.rotated.colState(col)]
	return fieldAtom(uint64(horiz), uint(row*Cols)).Or(fileSpread[col][vert])
}

// MovesFrom 返回 i 上棋子的伪合法落点（不管走完后自己的帅是否被将）。
// 空格返回空集。
func (p *Position) MovesFrom(i int) BitAtom {
	c := p.ColorAt(i)
	if c == NoColor {
		return BitAtom{}
	}
	var m BitAtom
	switch p.KindAt(i) {
	case King:
		m = kingTable[i]
	case Advisor:
		m = advisorTable[i]
	case Bishop:
		m = bishopTable[i][p.legState(i, &diagDirs, diagWall[i])]
	case Knight:
		m = knightTable[i][p.legState(i, &orthDirs, orthWall[i])]
	case Rook:
		m = p.rookMoves(i)
	case Cannon:
		m = p.cannonMoves(i)
	case Pawn:
		m = pawnTable[p.SideOf(c)][i]
	}
	return m.AndNot(p.colors[c])
}

// MovesOf 返回 c 方全部棋子伪合法落点的并集
func (p *Position) MovesOf(c Color) BitAtom {
	var m BitAtom
	for _, i := range p.colors[c].Cells() {
		m = m.Or(p.MovesFrom(i))
	}
	return m
}

// PseudoMoves 列出 c 方的伪合法走法
func (p *Position) PseudoMoves(c Color) []Move {
	var moves []Move
	for _, from := range p.colors[c].Cells() {
		for _, to := range p.MovesFrom(from).Cells() {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}
