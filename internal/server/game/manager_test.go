package game

import (
	"testing"

	"github.com/pkg/errors"

	"xiangqi/internal/xiangqi"
)

func TestNewGameDefaultsToStart(t *testing.T) {
	m := NewManager()
	g, err := m.NewGame("")
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if g.FEN() != xiangqi.StartFEN {
		t.Fatalf("fen = %q", g.FEN())
	}
	if len(g.LegalMoves()) != 44 {
		t.Fatalf("legal moves = %d, want 44", len(g.LegalMoves()))
	}
	if g.Status() != StatusOngoing {
		t.Fatalf("status = %s", g.Status())
	}
	if _, err := m.Get(g.ID); err != nil {
		t.Fatalf("Get: %v", err)
	}
}

func TestNewGameBadFEN(t *testing.T) {
	m := NewManager()
	if _, err := m.NewGame("not a fen"); err == nil {
		t.Fatalf("bad fen should fail")
	}
	if m.Count() != 0 {
		t.Fatalf("failed game was registered")
	}
}

func TestGetUnknown(t *testing.T) {
	m := NewManager()
	if _, err := m.Get("nope"); errors.Cause(err) != ErrGameNotFound {
		t.Fatalf("err = %v", err)
	}
}

func TestPlayUndoRedo(t *testing.T) {
	m := NewManager()
	g, _ := m.NewGame("")
	start := g.Pos

	// 红车 81 -> 72
	mv := xiangqi.Move{From: 81, To: 72}
	g, err := m.Play(g.ID, mv)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if g.SideToMove != xiangqi.Black {
		t.Fatalf("side = %v after red move", g.SideToMove)
	}
	if g.Pos.PieceAt(72) != xiangqi.MakePiece(xiangqi.Red, xiangqi.Rook) {
		t.Fatalf("rook not on 72")
	}

	g, err = m.Undo(g.ID)
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if g.Pos != start || g.SideToMove != xiangqi.Red {
		t.Fatalf("undo did not restore start position")
	}
	if _, err := m.Undo(g.ID); errors.Cause(err) != ErrNoHistory {
		t.Fatalf("undo at root err = %v", err)
	}

	g, err = m.Redo(g.ID, 0)
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	line, _ := m.Line(g.ID)
	if len(line) != 1 || line[0] != mv {
		t.Fatalf("line = %v", line)
	}
	if _, err := m.Redo(g.ID, 0); errors.Cause(err) != ErrNoVariation {
		t.Fatalf("redo past leaf err = %v", err)
	}
}

func TestPlayReusesVariation(t *testing.T) {
	m := NewManager()
	g, _ := m.NewGame("")
	mv := xiangqi.Move{From: 81, To: 72}
	m.Play(g.ID, mv)
	m.Undo(g.ID)
	g, _ = m.Play(g.ID, mv)
	if len(g.Tree.Nodes) != 2 {
		t.Fatalf("tree has %d nodes, want 2", len(g.Tree.Nodes))
	}
	m.Undo(g.ID)
	g, _ = m.Play(g.ID, xiangqi.Move{From: 81, To: 63})
	if n := len(g.Tree.Nodes[0].Children); n != 2 {
		t.Fatalf("root has %d variations, want 2", n)
	}
}

func TestPlayRejectsIllegal(t *testing.T) {
	m := NewManager()
	g, _ := m.NewGame("")
	cases := []xiangqi.Move{
		{From: 0, To: 9},    // 黑车，不轮到黑方
		{From: 81, To: 54},  // 车被自己的兵挡住
		{From: 40, To: 41},  // 空格
		{From: 81, To: 200}, // 越界
	}
	for _, mv := range cases {
		if _, err := m.Play(g.ID, mv); errors.Cause(err) != ErrIllegalMove {
			t.Errorf("Play(%v) err = %v", mv, err)
		}
	}
	if line, _ := m.Line(g.ID); len(line) != 0 {
		t.Fatalf("illegal moves changed the line: %v", line)
	}
}

func TestStatusCheckmate(t *testing.T) {
	m := NewManager()
	g, err := m.NewGame("4k3R/R8/9/9/9/9/9/9/9/3K5 b")
	if err != nil {
		t.Fatal(err)
	}
	if g.Status() != StatusCheckmate {
		t.Fatalf("status = %s", g.Status())
	}
	if len(g.LegalMoves()) != 0 {
		t.Fatalf("mated side has moves: %v", g.LegalMoves())
	}
}

func TestStatusCheck(t *testing.T) {
	m := NewManager()
	g, err := m.NewGame("4k4/9/9/9/9/9/9/9/9/3KR4 b")
	if err != nil {
		t.Fatal(err)
	}
	if g.Status() != StatusCheck {
		t.Fatalf("status = %s", g.Status())
	}
}

func TestSnapshotIsolated(t *testing.T) {
	m := NewManager()
	g, _ := m.NewGame("")
	m.Play(g.ID, xiangqi.Move{From: 81, To: 72})
	if len(g.Tree.Nodes) != 1 || g.SideToMove != xiangqi.Red {
		t.Fatalf("earlier snapshot changed")
	}
}
