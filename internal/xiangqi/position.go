package xiangqi

import "fmt"

// Position 是定长值类型：复制即克隆，内部没有指针。
// do/undo 必须严格按栈的顺序成对调用，这里不做检查。
type Position struct {
	pieces  [2][KindCount]BitAtom
	colors  [2]BitAtom
	all     BitAtom
	rotated BitAtom // all 按 col*10+row 重新编号
	bottom  Color
	key     uint64
	lock    uint64
}

// NewPosition 扫描一遍 90 格棋盘，建立占位和 Zobrist。
// 找不到帅（或将）时 panic：这是损坏的局面，不是正常的对局状态。
func NewPosition(b Board) Position {
	initZobrist()
	var p Position
	p.bottom = NoColor
	for i, pc := range b {
		if pc == 0 {
			continue
		}
		c, k := pc.Color(), pc.Kind()
		if k < King || k > Pawn {
			panic(fmt.Sprintf("xiangqi: bad piece %d at cell %d", pc, i))
		}
		p.put(c, k, i)
		if k == King && sideOfRow(rowOf(i)) == Bottom {
			p.bottom = c
		}
	}
	if p.pieces[Red][King].IsZero() || p.pieces[Black][King].IsZero() {
		panic("xiangqi: position without both kings")
	}
	if p.bottom == NoColor {
		panic("xiangqi: no king on the bottom side")
	}
	return p
}

func (p *Position) put(c Color, k Kind, i int) {
	p.pieces[c][k] = p.pieces[c][k].With(i)
	p.colors[c] = p.colors[c].With(i)
	p.all = p.all.With(i)
	p.rotated = p.rotated.With(rotatedIndex(i))
	p.toggleHash(c, k, i)
}

func (p *Position) remove(c Color, k Kind, i int) {
	p.pieces[c][k] = p.pieces[c][k].Without(i)
	p.colors[c] = p.colors[c].Without(i)
	p.all = p.all.Without(i)
	p.rotated = p.rotated.Without(rotatedIndex(i))
	p.toggleHash(c, k, i)
}

func (p *Position) Clone() Position { return *p }

// Bottom 返回从第 9 行一侧出发的颜色
func (p *Position) Bottom() Color { return p.bottom }

// SideOf 返回颜色所在的物理方位；兵的方向由它决定，而不是由颜色决定
func (p *Position) SideOf(c Color) Side {
	if c == p.bottom {
		return Bottom
	}
	return Top
}

func (p *Position) AllPieces() BitAtom             { return p.all }
func (p *Position) ColorPieces(c Color) BitAtom    { return p.colors[c] }
func (p *Position) Pieces(c Color, k Kind) BitAtom { return p.pieces[c][k] }

func (p *Position) ColorAt(i int) Color {
	switch {
	case p.colors[Red].Has(i):
		return Red
	case p.colors[Black].Has(i):
		return Black
	}
	return NoColor
}

// 按固定顺序逐个种类试
var kindOrder = [KindCount]Kind{Pawn, Rook, Cannon, Knight, Bishop, Advisor, King}

func (p *Position) KindAt(i int) Kind {
	c := p.ColorAt(i)
	if c == NoColor {
		return NoKind
	}
	for _, k := range kindOrder {
		if p.pieces[c][k].Has(i) {
			return k
		}
	}
	return NoKind
}

func (p *Position) PieceAt(i int) Piece {
	return MakePiece(p.ColorAt(i), p.KindAt(i))
}

// Board 还原成 90 格数组
func (p *Position) Board() Board {
	var b Board
	for c := Red; c <= Black; c++ {
		for k := King; k <= Pawn; k++ {
			for _, i := range p.pieces[c][k].Cells() {
				b[i] = MakePiece(c, k)
			}
		}
	}
	return b
}

func (p *Position) KingExists(c Color) bool {
	return !p.pieces[c][King].IsZero()
}

// kingCell 找不到帅时 panic
func (p *Position) kingCell(c Color) int {
	i := p.pieces[c][King].First()
	if i < 0 {
		panic(fmt.Sprintf("xiangqi: %v king missing", c))
	}
	return i
}

// DoMove 把 from 的子走到 to，返回被吃的种类（没吃子为 NoKind）。
// from 为空或 to 上是己方子时返回 ok=false，局面不变。
func (p *Position) DoMove(from, to int) (Kind, bool) {
	if from < 0 || from >= NumCells || to < 0 || to >= NumCells || from == to {
		return NoKind, false
	}
	c := p.ColorAt(from)
	if c == NoColor || p.colors[c].Has(to) {
		return NoKind, false
	}
	k := p.KindAt(from)
	captured := p.KindAt(to)
	if captured != NoKind {
		p.remove(c.Opposite(), captured, to)
	}
	p.remove(c, k, from)
	p.put(c, k, to)
	return captured, true
}

// UndoMove 撤销 DoMove(from, to)，captured 必须是当时 DoMove 报告的值
func (p *Position) UndoMove(from, to int, captured Kind) {
	c := p.ColorAt(to)
	if c == NoColor {
		panic(fmt.Sprintf("xiangqi: undo %d->%d with empty destination", from, to))
	}
	k := p.KindAt(to)
	p.remove(c, k, to)
	p.put(c, k, from)
	if captured != NoKind {
		p.put(c.Opposite(), captured, to)
	}
}
