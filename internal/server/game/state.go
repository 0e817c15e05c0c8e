package game

import (
	"time"

	"xiangqi/internal/xiangqi"
)

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCheck     Status = "check"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
	StatusKingTaken Status = "king_captured"
)

type GameState struct {
	ID         string
	Pos        xiangqi.Position
	SideToMove xiangqi.Color
	Tree       *Tree
	Cursor     int // 当前局面对应的节点
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Status 计算当前走子方的状态
func (g *GameState) Status() Status {
	side := g.SideToMove
	if !g.Pos.KingExists(side) || !g.Pos.KingExists(side.Opposite()) {
		return StatusKingTaken
	}
	inCheck := g.Pos.IsKilled(side)
	if !g.Pos.HasLegalMove(side) {
		if inCheck {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if inCheck {
		return StatusCheck
	}
	return StatusOngoing
}

func (g *GameState) FEN() string {
	return g.Pos.FEN(g.SideToMove)
}

func (g *GameState) LegalMoves() []xiangqi.Move {
	if !g.Pos.KingExists(xiangqi.Red) || !g.Pos.KingExists(xiangqi.Black) {
		return nil
	}
	return g.Pos.LegalMoves(g.SideToMove)
}

// snapshot 是交给调用方的只读副本
func (g *GameState) snapshot() *GameState {
	cp := *g
	cp.Tree = &Tree{Nodes: append([]Node(nil), g.Tree.Nodes...)}
	return &cp
}
