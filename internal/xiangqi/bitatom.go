package xiangqi

import "math/bits"

// BitAtom 是 128 位的格子集合：第 i 位对应第 i 格。第 90 位以上恒为 0。
type BitAtom struct {
	Lo, Hi uint64
}

func cellAtom(i int) BitAtom {
	if i < 64 {
		return BitAtom{Lo: 1 << uint(i)}
	}
	return BitAtom{Hi: 1 << uint(i-64)}
}

// fieldAtom 把 v 放到第 off 位开始的位置
func fieldAtom(v uint64, off uint) BitAtom {
	if off >= 64 {
		return BitAtom{Hi: v << (off - 64)}
	}
	return BitAtom{Lo: v << off, Hi: v >> (64 - off)}
}

// field 取出从 off 开始的 n 位
func (b BitAtom) field(off, n uint) uint {
	mask := uint64(1)<<n - 1
	if off >= 64 {
		return uint((b.Hi >> (off - 64)) & mask)
	}
	v := b.Lo >> off
	if off+n > 64 {
		v |= b.Hi << (64 - off)
	}
	return uint(v & mask)
}

func (b BitAtom) Has(i int) bool {
	if i < 0 || i >= NumCells {
		return false
	}
	if i < 64 {
		return b.Lo&(1<<uint(i)) != 0
	}
	return b.Hi&(1<<uint(i-64)) != 0
}

func (b BitAtom) With(i int) BitAtom    { return b.Or(cellAtom(i)) }
func (b BitAtom) Without(i int) BitAtom { return b.AndNot(cellAtom(i)) }

func (b BitAtom) Or(o BitAtom) BitAtom     { return BitAtom{b.Lo | o.Lo, b.Hi | o.Hi} }
func (b BitAtom) And(o BitAtom) BitAtom    { return BitAtom{b.Lo & o.Lo, b.Hi & o.Hi} }
func (b BitAtom) AndNot(o BitAtom) BitAtom { return BitAtom{b.Lo &^ o.Lo, b.Hi &^ o.Hi} }
func (b BitAtom) Xor(o BitAtom) BitAtom    { return BitAtom{b.Lo ^ o.Lo, b.Hi ^ o.Hi} }

func (b BitAtom) IsZero() bool { return b.Lo == 0 && b.Hi == 0 }

func (b BitAtom) Count() int {
	return bits.OnesCount64(b.Lo) + bits.OnesCount64(b.Hi)
}

// First 返回最低位的格子，空集返回 -1
func (b BitAtom) First() int {
	if b.Lo != 0 {
		return bits.TrailingZeros64(b.Lo)
	}
	if b.Hi != 0 {
		return 64 + bits.TrailingZeros64(b.Hi)
	}
	return -1
}

// Cells 按格子编号从小到大列出所有置位的格子
func (b BitAtom) Cells() []int {
	out := make([]int, 0, b.Count())
	for lo := b.Lo; lo != 0; lo &= lo - 1 {
		out = append(out, bits.TrailingZeros64(lo))
	}
	for hi := b.Hi; hi != 0; hi &= hi - 1 {
		out = append(out, 64+bits.TrailingZeros64(hi))
	}
	return out
}

// rowState 取第 row 行的 9 位占位
func (b BitAtom) rowState(row int) uint {
	return b.field(uint(row*Cols), Cols)
}

// colState 取旋转棋盘上第 col 列的 10 位占位
func (b BitAtom) colState(col int) uint {
	return b.field(uint(col*Rows), Rows)
}

// rotate 把 row*9+col 编号的集合换成 col*10+row 编号
func (b BitAtom) rotate() BitAtom {
	var r BitAtom
	for _, i := range b.Cells() {
		r = r.With(rotatedIndex(i))
	}
	return r
}
