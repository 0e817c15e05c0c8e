package xiangqi

import "testing"

func TestHashInitializedFromStartAndFEN(t *testing.T) {
	pos := NewPosition(StartBoard())
	if k, l := pos.CalculateHash(); k != pos.Key() || l != pos.Lock() {
		t.Fatalf("start hash mismatch: got=%x/%x want=%x/%x", pos.Key(), pos.Lock(), k, l)
	}

	decoded, _, err := PositionFromFEN(StartFEN)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Key() != pos.Key() || decoded.Lock() != pos.Lock() {
		t.Fatalf("fen hash differs from start board hash")
	}
}

func TestTranspositionSameHash(t *testing.T) {
	// 两种次序走到同一个局面
	a := NewPosition(StartBoard())
	b := a
	for _, mv := range []Move{{81, 72}, {0, 9}, {89, 80}, {8, 17}} {
		if _, ok := a.DoMove(mv.From, mv.To); !ok {
			t.Fatalf("a: move %v rejected", mv)
		}
	}
	for _, mv := range []Move{{89, 80}, {8, 17}, {81, 72}, {0, 9}} {
		if _, ok := b.DoMove(mv.From, mv.To); !ok {
			t.Fatalf("b: move %v rejected", mv)
		}
	}
	if a != b {
		t.Fatalf("positions differ after transposed move orders")
	}
	ak, al := a.HashFor(Red)
	bk, bl := b.HashFor(Red)
	if ak != bk || al != bl {
		t.Fatalf("transposition hash mismatch")
	}
}

func TestCollisionProbesDistinct(t *testing.T) {
	seen := map[uint64]bool{}
	for i := 0; i < ProbeCount; i++ {
		v := CollisionProbe(i)
		if v == 0 || seen[v] {
			t.Fatalf("probe %d = %x repeats or is zero", i, v)
		}
		seen[v] = true
	}
}
