package xiangqi

import "fmt"

// kingsFace 判断两帅是否同列且中间无子（对脸）
func (p *Position) kingsFace() bool {
	red, black := p.kingCell(Red), p.kingCell(Black)
	if colOf(red) != colOf(black) {
		return false
	}
	lo, hi := rowOf(red), rowOf(black)
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		panic(fmt.Sprintf("xiangqi: kings share cell %d", red))
	}
	between := p.rotated.colState(colOf(red)) >> uint(lo+1)
	between &= 1<<uint(hi-lo-1) - 1
	return between == 0
}

// IsKilled 判断 c 方是否被将军：对脸，或者对方任一棋子能走到帅的位置
func (p *Position) IsKilled(c Color) bool {
	if p.kingsFace() {
		return true
	}
	return p.MovesOf(c.Opposite()).Has(p.kingCell(c))
}

// tryMove 试走一步，返回走完后自己是否安全；局面总会被还原
func (p *Position) tryMove(from, to int) bool {
	c := p.ColorAt(from)
	captured, ok := p.DoMove(from, to)
	if !ok {
		return false
	}
	// 吃掉对方帅时对局已经结束，不再看自己是否被将
	safe := captured == King || !p.IsKilled(c)
	p.UndoMove(from, to, captured)
	return safe
}

// LegalMovesFrom 在伪合法落点中去掉走完后自己被将的那些
func (p *Position) LegalMovesFrom(i int) BitAtom {
	var legal BitAtom
	for _, to := range p.MovesFrom(i).Cells() {
		if p.tryMove(i, to) {
			legal = legal.With(to)
		}
	}
	return legal
}

func (p *Position) LegalMoves(c Color) []Move {
	var moves []Move
	for _, from := range p.colors[c].Cells() {
		for _, to := range p.LegalMovesFrom(from).Cells() {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

func (p *Position) HasLegalMove(c Color) bool {
	for _, from := range p.colors[c].Cells() {
		for _, to := range p.MovesFrom(from).Cells() {
			if p.tryMove(from, to) {
				return true
			}
		}
	}
	return false
}

// EvaluateMoves 给每一步伪合法走法打分：走完自己不被将记 1，否则记 0。
// 这里不用这个分数，留给上层统计频次。
func (p *Position) EvaluateMoves(c Color) map[Move]int {
	out := make(map[Move]int)
	for _, mv := range p.PseudoMoves(c) {
		score := 0
		if p.tryMove(mv.From, mv.To) {
			score = 1
		}
		out[mv] = score
	}
	return out
}
