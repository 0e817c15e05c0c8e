package xiangqi

import "testing"

func TestIsKilled(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		redKilled bool
		blkKilled bool
	}{
		{name: "start", fen: StartFEN},
		{name: "flying general", fen: "4k4/9/9/9/9/9/9/9/9/4K4 w", redKilled: true, blkKilled: true},
		{name: "kings blocked", fen: "4k4/9/9/9/4p4/9/9/9/9/4K4 w"},
		{name: "adjacent kings", fen: "9/9/9/9/9/9/9/4k4/4K4/9 w", redKilled: true, blkKilled: true},
		{name: "rook on file", fen: "3k5/9/9/9/9/9/9/9/9/3RK4 b", blkKilled: true},
		{name: "knight", fen: "4k4/9/3N5/9/9/9/9/9/9/5K3 b", blkKilled: true},
		{name: "knight leg blocked", fen: "4k4/3p5/3N5/9/9/9/9/9/9/5K3 b"},
		{name: "cannon with screen", fen: "4k4/9/9/4p4/9/4C4/9/9/9/3K5 b", blkKilled: true},
		{name: "cannon without screen", fen: "4k4/9/9/9/9/4C4/9/9/9/3K5 b"},
		{name: "pawn forward", fen: "4k4/4P4/9/9/9/9/9/9/9/3K5 b", blkKilled: true},
		{name: "pawn behind does not attack", fen: "4P4/4k4/9/9/9/9/9/9/9/3K5 b"},
		{name: "black pawn sideways", fen: "5k3/9/9/9/9/9/9/9/3pK4/9 w", redKilled: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := mustPosition(t, tt.fen)
			if got := p.IsKilled(Red); got != tt.redKilled {
				t.Errorf("IsKilled(Red) = %v, want %v", got, tt.redKilled)
			}
			if got := p.IsKilled(Black); got != tt.blkKilled {
				t.Errorf("IsKilled(Black) = %v, want %v", got, tt.blkKilled)
			}
		})
	}
}

func TestPinnedRookStaysOnFile(t *testing.T) {
	p, _ := mustPosition(t, "3k5/4r4/9/9/9/9/4R4/9/9/4K4 w")
	before := p
	legal := p.LegalMovesFrom(indexOf(6, 4))
	if legal.Count() != 7 {
		t.Fatalf("pinned rook legal moves = %v, want 7 along the file", legal.Cells())
	}
	for _, to := range legal.Cells() {
		if colOf(to) != 4 {
			t.Fatalf("pinned rook may not leave the file, got %d", to)
		}
	}
	if p != before {
		t.Fatalf("legality filter left the position mutated")
	}
	if pseudo := p.MovesFrom(indexOf(6, 4)).Count(); pseudo != 15 {
		t.Fatalf("pinned rook pseudo moves = %d, want 15", pseudo)
	}
}

func TestKingMayNotFaceKing(t *testing.T) {
	p, _ := mustPosition(t, "3k5/9/9/9/9/9/9/9/9/4K4 w")
	legal := p.LegalMovesFrom(indexOf(9, 4))
	if legal.Has(indexOf(9, 3)) {
		t.Fatalf("king stepped onto the open file facing the other king")
	}
	if !legal.Has(indexOf(8, 4)) || !legal.Has(indexOf(9, 5)) {
		t.Fatalf("king legal moves = %v", legal.Cells())
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	p, _ := mustPosition(t, "4k3R/R8/9/9/9/9/9/9/9/3K5 b")
	if !p.IsKilled(Black) {
		t.Fatalf("black should be in check")
	}
	if p.HasLegalMove(Black) {
		t.Fatalf("black should have no legal move, got %v", p.LegalMoves(Black))
	}
	if !p.HasLegalMove(Red) {
		t.Fatalf("red should still have moves")
	}
}

func TestCapturingKingIsAlwaysLegal(t *testing.T) {
	// 吃掉黑将后局面里已经没有黑将，不再判断红方是否被将
	p, _ := mustPosition(t, "3k5/9/9/9/9/9/9/9/3R5/4K4 w")
	if !p.LegalMovesFrom(indexOf(8, 3)).Has(indexOf(0, 3)) {
		t.Fatalf("rook capture of the king should be legal")
	}
}

func TestEvaluateMovesCountsSafeMoves(t *testing.T) {
	p, _ := mustPosition(t, "3k5/4r4/9/9/9/9/4R4/9/9/4K4 w")
	scores := p.EvaluateMoves(Red)
	if len(scores) != len(p.PseudoMoves(Red)) {
		t.Fatalf("scored %d moves, want every pseudo move", len(scores))
	}
	safe := 0
	for _, s := range scores {
		safe += s
	}
	if safe != len(p.LegalMoves(Red)) {
		t.Fatalf("safe moves = %d, legal moves = %d", safe, len(p.LegalMoves(Red)))
	}
}

func TestMissingKingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a board without kings")
		}
	}()
	var b Board
	b[indexOf(9, 4)] = MakePiece(Red, King)
	NewPosition(b)
}
