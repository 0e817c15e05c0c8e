package httpserver

import (
	"fmt"

	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// 前端用的招法结构
type MoveDTO struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func dtoToMove(m MoveDTO) xiangqi.Move {
	return xiangqi.Move{From: m.From, To: m.To}
}

func moveToDTO(m xiangqi.Move) MoveDTO {
	return MoveDTO{From: m.From, To: m.To}
}

func movesToDTO(ms []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

func sideToInt(s xiangqi.Color) int {
	switch s {
	case xiangqi.Red:
		return 0
	case xiangqi.Black:
		return 1
	default:
		return -1
	}
}

// NewGame 请求；FEN 为空用开局
type NewGameRequest struct {
	FEN string `json:"fen"`
}

// 对局 ID 请求：state / undo / line 都只带这个
type GameRequest struct {
	GameID string `json:"game_id"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type RedoRequest struct {
	GameID    string `json:"game_id"`
	Variation int    `json:"variation"`
}

// Moves 请求：某一格的合法落点
type MovesRequest struct {
	GameID string `json:"game_id"`
	Cell   int    `json:"cell"`
}

// 所有改动局面的接口都返回这个
type StateResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"`    // FEN 字符串
	ToMove     int       `json:"to_move"`     // 0=红(w),1=黑(b)
	LegalMoves []MoveDTO `json:"legal_moves"` // 当前所有可走棋
	Status     string    `json:"status"`      // ongoing / check / checkmate / stalemate
	Key        string    `json:"key"`
	Lock       string    `json:"lock"`
	Ply        int       `json:"ply"`
}

type MovesResponse struct {
	Cell    int   `json:"cell"`
	Targets []int `json:"targets"`
}

type LineResponse struct {
	GameID string    `json:"game_id"`
	Moves  []MoveDTO `json:"moves"`
}

func stateResponse(g *game.GameState) StateResponse {
	key, lock := g.Pos.HashFor(g.SideToMove)
	return StateResponse{
		GameID:     g.ID,
		Position:   g.FEN(),
		ToMove:     sideToInt(g.SideToMove),
		LegalMoves: movesToDTO(g.LegalMoves()),
		Status:     string(g.Status()),
		Key:        fmt.Sprintf("%016x", key),
		Lock:       fmt.Sprintf("%016x", lock),
		Ply:        len(g.Tree.Line(g.Cursor)),
	}
}
