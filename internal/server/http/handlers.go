package httpserver

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pkg/errors"

	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
}

func NewHandler(games *game.Manager) *Handler {
	if games == nil {
		games = game.NewManager()
	}
	return &Handler{games: games}
}

func (h *Handler) Games() *game.Manager {
	return h.games
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var fn func(http.ResponseWriter, *http.Request)
	switch r.URL.Path {
	case "/api/new_game":
		fn = h.handleNewGame
	case "/api/state":
		fn = h.handleState
	case "/api/play":
		fn = h.handlePlay
	case "/api/undo":
		fn = h.handleUndo
	case "/api/redo":
		fn = h.handleRedo
	case "/api/line":
		fn = h.handleLine
	case "/api/moves":
		fn = h.handleMoves
	default:
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	fn(w, r)
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if !decode(w, r, &req) {
		return
	}
	g, err := h.games.NewGame(req.FEN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, stateResponse(g))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateResponse(g))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decode(w, r, &req) {
		return
	}
	g, err := h.games.Play(req.GameID, dtoToMove(req.Move))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateResponse(g))
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	g, err := h.games.Undo(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateResponse(g))
}

func (h *Handler) handleRedo(w http.ResponseWriter, r *http.Request) {
	var req RedoRequest
	if !decode(w, r, &req) {
		return
	}
	g, err := h.games.Redo(req.GameID, req.Variation)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateResponse(g))
}

func (h *Handler) handleLine(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	line, err := h.games.Line(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, LineResponse{GameID: req.GameID, Moves: movesToDTO(line)})
}

// handleMoves 给前端点子时高亮用
func (h *Handler) handleMoves(w http.ResponseWriter, r *http.Request) {
	var req MovesRequest
	if !decode(w, r, &req) {
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Cell < 0 || req.Cell >= xiangqi.NumCells {
		http.Error(w, "cell out of range", http.StatusBadRequest)
		return
	}
	targets := []int{}
	if g.Pos.ColorAt(req.Cell) == g.SideToMove {
		for _, mv := range g.LegalMoves() {
			if mv.From == req.Cell {
				targets = append(targets, mv.To)
			}
		}
	}
	writeJSON(w, MovesResponse{Cell: req.Cell, Targets: targets})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	switch errors.Cause(err) {
	case game.ErrGameNotFound:
		http.Error(w, err.Error(), http.StatusNotFound)
	case game.ErrIllegalMove, game.ErrNoHistory, game.ErrNoVariation:
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("[HTTP] %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
