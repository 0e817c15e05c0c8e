package xiangqi

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const StartFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"

var ErrInvalidFEN = errors.New("invalid FEN")

var letterToKind = map[rune]Kind{
	'k': King,
	'a': Advisor,
	'b': Bishop,
	'e': Bishop, // 有的软件用 E 表示象
	'n': Knight,
	'h': Knight, // 有的软件用 H 表示马
	'r': Rook,
	'c': Cannon,
	'p': Pawn,
}

var kindToLetter = [KindCount]rune{'k', 'a', 'b', 'n', 'r', 'c', 'p'}

func pieceToChar(p Piece) rune {
	k := p.Kind()
	if k == NoKind {
		return '.'
	}
	if p.Color() == Red {
		return unicode.ToUpper(kindToLetter[k])
	}
	return kindToLetter[k]
}

func (p Piece) String() string { return string(pieceToChar(p)) }

// ParseFEN 解析 10 行用 “/” 隔开的 FEN；第一行是第 0 行。
// 空格后 w/r 为红走，b 为黑走，省略时红走。
func ParseFEN(fen string) (Board, Color, error) {
	var b Board
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return b, NoColor, ErrInvalidFEN
	}
	rows := strings.Split(fields[0], "/")
	if len(rows) != Rows {
		return b, NoColor, errors.Wrapf(ErrInvalidFEN, "%d rows", len(rows))
	}
	for r, row := range rows {
		c := 0
		for _, ch := range row {
			if c >= Cols {
				return b, NoColor, errors.Wrapf(ErrInvalidFEN, "row %d too long", r)
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			k, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return b, NoColor, errors.Wrapf(ErrInvalidFEN, "unknown piece %q", ch)
			}
			color := Black
			if unicode.IsUpper(ch) {
				color = Red
			}
			b[indexOf(r, c)] = MakePiece(color, k)
			c++
		}
		if c != Cols {
			return b, NoColor, errors.Wrapf(ErrInvalidFEN, "row %d has %d columns", r, c)
		}
	}
	side := Red
	if len(fields) > 1 {
		switch fields[1] {
		case "w", "r":
		case "b":
			side = Black
		default:
			return b, NoColor, errors.Wrapf(ErrInvalidFEN, "side %q", fields[1])
		}
	}
	return b, side, nil
}

// FEN 编码棋盘，side 为走子方
func (b *Board) FEN(side Color) string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := b[indexOf(r, c)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if side == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

func (p *Position) FEN(side Color) string {
	b := p.Board()
	return b.FEN(side)
}

// String 打印成 10 行文本棋盘，空格为 '.'
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			sb.WriteRune(pieceToChar(b[indexOf(r, c)]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// StartBoard 返回标准开局
func StartBoard() Board {
	b, _, err := ParseFEN(StartFEN)
	if err != nil {
		panic("xiangqi: bad StartFEN")
	}
	return b
}

// PositionFromFEN 解析 FEN 并建立局面
func PositionFromFEN(fen string) (Position, Color, error) {
	b, side, err := ParseFEN(fen)
	if err != nil {
		return Position{}, NoColor, err
	}
	if !hasBothKings(&b) {
		return Position{}, NoColor, errors.Wrap(ErrInvalidFEN, "missing king")
	}
	return NewPosition(b), side, nil
}

func hasBothKings(b *Board) bool {
	var red, black, bottom bool
	for i, pc := range b {
		if pc.Kind() != King {
			continue
		}
		if pc.Color() == Red {
			red = true
		} else {
			black = true
		}
		if sideOfRow(rowOf(i)) == Bottom {
			bottom = true
		}
	}
	return red && black && bottom
}
