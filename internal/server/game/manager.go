package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"xiangqi/internal/xiangqi"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrIllegalMove  = errors.New("illegal move")
	ErrNoHistory    = errors.New("no move to undo")
	ErrNoVariation  = errors.New("no such variation")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame 开一局；fen 为空时用开局局面
func (m *Manager) NewGame(fen string) (*GameState, error) {
	if fen == "" {
		fen = xiangqi.StartFEN
	}
	pos, side, err := xiangqi.PositionFromFEN(fen)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	now := time.Now()
	g := &GameState{
		ID:         id,
		Pos:        pos,
		SideToMove: side,
		Tree:       NewTree(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	m.games[id] = g
	return g.snapshot(), nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g.snapshot(), nil
}

// Play 走一步，必须是当前走子方的合法着法
func (m *Manager) Play(id string, mv xiangqi.Move) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	if !isLegal(g, mv) {
		return nil, errors.Wrapf(ErrIllegalMove, "%d->%d", mv.From, mv.To)
	}
	captured, ok := g.Pos.DoMove(mv.From, mv.To)
	if !ok {
		// 合法着法不该被 DoMove 拒绝
		panic("game: legal move rejected by DoMove")
	}
	g.Cursor = g.Tree.Add(g.Cursor, mv, captured)
	g.SideToMove = g.SideToMove.Opposite()
	g.UpdatedAt = time.Now()
	return g.snapshot(), nil
}

func isLegal(g *GameState, mv xiangqi.Move) bool {
	if mv.From < 0 || mv.From >= xiangqi.NumCells || mv.To < 0 || mv.To >= xiangqi.NumCells {
		return false
	}
	if g.Pos.ColorAt(mv.From) != g.SideToMove {
		return false
	}
	if !g.Pos.KingExists(xiangqi.Red) || !g.Pos.KingExists(xiangqi.Black) {
		return false
	}
	return g.Pos.LegalMovesFrom(mv.From).Has(mv.To)
}

// Undo 退回父节点，子节点保留在树里，可以 Redo
func (m *Manager) Undo(id string) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	if g.Cursor == 0 {
		return nil, ErrNoHistory
	}
	n := g.Tree.Nodes[g.Cursor]
	g.Pos.UndoMove(n.Move.From, n.Move.To, n.Captured)
	g.Cursor = n.Parent
	g.SideToMove = g.SideToMove.Opposite()
	g.UpdatedAt = time.Now()
	return g.snapshot(), nil
}

// Redo 沿第 variation 个变着重新走一步
func (m *Manager) Redo(id string, variation int) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	children := g.Tree.Nodes[g.Cursor].Children
	if variation < 0 || variation >= len(children) {
		return nil, errors.Wrapf(ErrNoVariation, "variation %d of %d", variation, len(children))
	}
	child := children[variation]
	mv := g.Tree.Nodes[child].Move
	if _, ok := g.Pos.DoMove(mv.From, mv.To); !ok {
		panic("game: stored variation no longer applies")
	}
	g.Cursor = child
	g.SideToMove = g.SideToMove.Opposite()
	g.UpdatedAt = time.Now()
	return g.snapshot(), nil
}

// Line 返回从开局到当前节点的着法
func (m *Manager) Line(id string) ([]xiangqi.Move, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g.Tree.Line(g.Cursor), nil
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
