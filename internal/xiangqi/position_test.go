package xiangqi

import (
	"math/rand"
	"testing"
)

func mustPosition(t *testing.T, fen string) (Position, Color) {
	t.Helper()
	p, side, err := PositionFromFEN(fen)
	if err != nil {
		t.Fatalf("PositionFromFEN(%q): %v", fen, err)
	}
	return p, side
}

func TestStartPositionRookAndPawns(t *testing.T) {
	p := NewPosition(StartBoard())
	if p.Bottom() != Red {
		t.Fatalf("bottom = %v, want Red", p.Bottom())
	}

	// 左下角的车被自己的马和兵挡住，只能沿着直线走两步
	rook := indexOf(9, 0)
	got := p.MovesFrom(rook).Cells()
	if len(got) != 2 || got[0] != indexOf(7, 0) || got[1] != indexOf(8, 0) {
		t.Fatalf("left red rook moves = %v", got)
	}

	for _, c := range []Color{Red, Black} {
		for _, i := range p.Pieces(c, Pawn).Cells() {
			m := p.MovesFrom(i)
			if m.Count() != 1 {
				t.Fatalf("%v pawn at %d has %d moves, want only the forward step", c, i, m.Count())
			}
			if colOf(m.First()) != colOf(i) {
				t.Fatalf("%v pawn at %d moves sideways to %d before crossing", c, i, m.First())
			}
		}
	}
}

func TestStartPositionMoveCounts(t *testing.T) {
	p := NewPosition(StartBoard())
	if got := len(p.PseudoMoves(Red)); got != 44 {
		t.Errorf("red pseudo moves = %d, want 44", got)
	}
	if got := len(p.LegalMoves(Black)); got != 44 {
		t.Errorf("black legal moves = %d, want 44", got)
	}
}

func TestMovesFromEmptyCell(t *testing.T) {
	p := NewPosition(StartBoard())
	if m := p.MovesFrom(indexOf(4, 4)); !m.IsZero() {
		t.Fatalf("empty cell moves = %v", m.Cells())
	}
	if _, ok := p.DoMove(indexOf(4, 4), indexOf(3, 4)); ok {
		t.Fatalf("DoMove from empty cell should fail")
	}
	// 不能吃自己的子
	if _, ok := p.DoMove(indexOf(9, 0), indexOf(9, 1)); ok {
		t.Fatalf("DoMove onto own piece should fail")
	}
	if p != NewPosition(StartBoard()) {
		t.Fatalf("failed DoMove mutated the position")
	}
}

func TestKindAtAndBoardRoundTrip(t *testing.T) {
	b := StartBoard()
	p := NewPosition(b)
	for i, pc := range b {
		if p.PieceAt(i) != pc {
			t.Fatalf("cell %d: got %d want %d", i, p.PieceAt(i), pc)
		}
	}
	if p.Board() != b {
		t.Fatalf("Board() does not reproduce input")
	}
	if p.KindAt(indexOf(5, 5)) != NoKind || p.ColorAt(indexOf(5, 5)) != NoColor {
		t.Fatalf("empty cell should report NoKind/NoColor")
	}
}

// 随机对局中每一步伪合法走法 do/undo 后都必须完全还原
func TestDoUndoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for game := 0; game < 4; game++ {
		p := NewPosition(StartBoard())
		side := Red
		for ply := 0; ply < 80; ply++ {
			before := p
			for _, mv := range p.PseudoMoves(side) {
				if p.ColorAt(mv.To) == side {
					t.Fatalf("pseudo move %v lands on own piece", mv)
				}
				captured, ok := p.DoMove(mv.From, mv.To)
				if !ok {
					t.Fatalf("DoMove(%v) failed", mv)
				}
				p.UndoMove(mv.From, mv.To, captured)
				if p != before {
					t.Fatalf("game %d ply %d: position changed after do/undo of %v", game, ply, mv)
				}
			}
			legal := p.LegalMoves(side)
			if len(legal) == 0 {
				break
			}
			mv := legal[rng.Intn(len(legal))]
			if captured, _ := p.DoMove(mv.From, mv.To); captured == King {
				break
			}
			key, lock := p.CalculateHash()
			if key != p.Key() || lock != p.Lock() {
				t.Fatalf("game %d ply %d: incremental hash drifted", game, ply)
			}
			side = side.Opposite()
		}
	}
}

func TestHashDeterminism(t *testing.T) {
	a := NewPosition(StartBoard())
	b := NewPosition(StartBoard())
	if a.Key() != b.Key() || a.Lock() != b.Lock() {
		t.Fatalf("same board, different hash")
	}
	if a.Key() == a.Lock() {
		t.Fatalf("key and lock streams should differ")
	}
	rng := rand.New(rand.NewSource(3))
	side := Red
	for ply := 0; ply < 60; ply++ {
		legal := a.LegalMoves(side)
		if len(legal) == 0 {
			break
		}
		mv := legal[rng.Intn(len(legal))]
		a.DoMove(mv.From, mv.To)
		b.DoMove(mv.From, mv.To)
		if a.Key() != b.Key() || a.Lock() != b.Lock() {
			t.Fatalf("ply %d: hashes diverged", ply)
		}
		side = side.Opposite()
	}
}

func TestHashForSide(t *testing.T) {
	p := NewPosition(StartBoard())
	rk, rl := p.HashFor(Red)
	bk, bl := p.HashFor(Black)
	if rk == bk || rl == bl {
		t.Fatalf("side-qualified hashes should differ")
	}
	sk, sl := SideKey(Red)
	if rk^sk != p.Key() || rl^sl != p.Lock() {
		t.Fatalf("HashFor(Red) is not key^sideKey")
	}
}

func TestPawnDirectionFollowsBoardSide(t *testing.T) {
	// 黑方在下：黑兵向上走，过河后可以横走
	p, _ := mustPosition(t, "3K5/9/9/9/4p4/9/9/9/9/4k4 b")
	if p.Bottom() != Black {
		t.Fatalf("bottom = %v, want Black", p.Bottom())
	}
	got := p.MovesFrom(indexOf(4, 4)).Cells()
	want := []int{indexOf(3, 4), indexOf(4, 3), indexOf(4, 5)}
	if len(got) != 3 || got[0] != want[0] || got[1] != want[1] || got[2] != want[2] {
		t.Fatalf("crossed bottom pawn moves = %v, want %v", got, want)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewPosition(StartBoard())
	q := p.Clone()
	q.DoMove(indexOf(7, 1), indexOf(7, 4))
	if p == q {
		t.Fatalf("clone shares state with original")
	}
	if p != NewPosition(StartBoard()) {
		t.Fatalf("original changed through clone")
	}
}
