package xiangqi

import "sync"

const (
	keySeed   = 1
	lockSeed  = 2
	sideSeed  = 3
	probeSeed = 4

	// ProbeCount 是碰撞探测流的长度
	ProbeCount = 8
)

var (
	zobristOnce sync.Once

	zobristKey  [2][KindCount][NumCells]uint64
	zobristLock [2][KindCount][NumCells]uint64
	sideKey     [2]uint64
	sideLock    [2]uint64
	probeKeys   [ProbeCount]uint64
)

// xorshift 是固定种子的 xorshift64* 序列，只求可复现，不求密码学强度
type xorshift struct {
	s uint64
}

func newXorshift(seed uint64) *xorshift {
	r := &xorshift{s: seed}
	// 小种子开头几个输出相关性很强，先空转
	for i := 0; i < 32; i++ {
		r.next()
	}
	return r
}

func (r *xorshift) next() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

func initZobrist() {
	zobristOnce.Do(func() {
		keys := newXorshift(keySeed)
		locks := newXorshift(lockSeed)
		for c := 0; c < 2; c++ {
			for k := 0; k < KindCount; k++ {
				for i := 0; i < NumCells; i++ {
					zobristKey[c][k][i] = keys.next()
					zobristLock[c][k][i] = locks.next()
				}
			}
		}
		sides := newXorshift(sideSeed)
		for c := 0; c < 2; c++ {
			sideKey[c] = sides.next()
			sideLock[c] = sides.next()
		}
		probes := newXorshift(probeSeed)
		for i := range probeKeys {
			probeKeys[i] = probes.next()
		}
	})
}

// CollisionProbe 返回第 i 个碰撞探测常量，供外部哈希表在 key 相同时换槽
func CollisionProbe(i int) uint64 {
	initZobrist()
	return probeKeys[i]
}

// SideKey 返回走子方的 (key, lock) 常量
func SideKey(c Color) (uint64, uint64) {
	initZobrist()
	return sideKey[c], sideLock[c]
}

// toggleHash 对一个 (color, kind, cell) 做一次 XOR；XOR 自逆，do/undo 用同一配方
func (p *Position) toggleHash(c Color, k Kind, i int) {
	p.key ^= zobristKey[c][k][i]
	p.lock ^= zobristLock[c][k][i]
}

// HashFor 返回带走子方的 (key, lock)，用于置换表
func (p *Position) HashFor(side Color) (uint64, uint64) {
	return p.key ^ sideKey[side], p.lock ^ sideLock[side]
}

func (p *Position) Key() uint64  { return p.key }
func (p *Position) Lock() uint64 { return p.lock }

// CalculateHash 全量重算 (key, lock)，只在测试和校验时用
func (p *Position) CalculateHash() (uint64, uint64) {
	initZobrist()
	var key, lock uint64
	for c := Red; c <= Black; c++ {
		for k := King; k <= Pawn; k++ {
			for _, i := range p.pieces[c][k].Cells() {
				key ^= zobristKey[c][k][i]
				lock ^= zobristLock[c][k][i]
			}
		}
	}
	return key, lock
}
