package xiangqi

type Color int8

const (
	NoColor Color = -1
	Red     Color = 0
	Black   Color = 1
)

func (c Color) Opposite() Color {
	switch c {
	case Red:
		return Black
	case Black:
		return Red
	default:
		return NoColor
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

type Kind int8

const (
	NoKind  Kind = -1
	King    Kind = 0 // 帅/将
	Advisor Kind = 1 // 仕/士
	Bishop  Kind = 2 // 相/象
	Knight  Kind = 3 // 马
	Rook    Kind = 4 // 车
	Cannon  Kind = 5 // 炮
	Pawn    Kind = 6 // 兵/卒

	KindCount = 7
)

func (k Kind) String() string {
	switch k {
	case King:
		return "King"
	case Advisor:
		return "Advisor"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Rook:
		return "Rook"
	case Cannon:
		return "Cannon"
	case Pawn:
		return "Pawn"
	default:
		return "None"
	}
}

// Piece 是棋盘数组里的一格：0=空；>0 红；<0 黑；abs-1=Kind
type Piece int8

func MakePiece(c Color, k Kind) Piece {
	if k == NoKind || c == NoColor {
		return 0
	}
	if c == Red {
		return Piece(k + 1)
	}
	return -Piece(k + 1)
}

func (p Piece) Kind() Kind {
	if p == 0 {
		return NoKind
	}
	if p < 0 {
		return Kind(-p - 1)
	}
	return Kind(p - 1)
}

func (p Piece) Color() Color {
	if p == 0 {
		return NoColor
	}
	if p > 0 {
		return Red
	}
	return Black
}

// Board 是外部传进来的 90 格棋盘
type Board [NumCells]Piece

type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}
