package main

import (
	"math/rand"

	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// Player 从当前局面的合法着法里选一步
type Player struct {
	Name string
	Pick func(g *game.GameState, legal []xiangqi.Move, rng *rand.Rand) xiangqi.Move
}

var randomPlayer = Player{
	Name: "random",
	Pick: func(_ *game.GameState, legal []xiangqi.Move, rng *rand.Rand) xiangqi.Move {
		return legal[rng.Intn(len(legal))]
	},
}

// 有子可吃先吃，吃子里面优先吃大子
var capturePlayer = Player{
	Name: "capture-first",
	Pick: func(g *game.GameState, legal []xiangqi.Move, rng *rand.Rand) xiangqi.Move {
		best := -1
		var picks []xiangqi.Move
		for _, mv := range legal {
			v := captureValue[g.Pos.KindAt(mv.To)+1]
			switch {
			case v > best:
				best = v
				picks = append(picks[:0], mv)
			case v == best:
				picks = append(picks, mv)
			}
		}
		return picks[rng.Intn(len(picks))]
	},
}

// 下标是 Kind+1，0 对应空格
var captureValue = [xiangqi.KindCount + 1]int{0, 100, 2, 2, 4, 9, 4, 1}

type result struct {
	winner xiangqi.Color // NoColor 为和
	status game.Status
	plies  int
}

// playGame 用 Manager 走完一局，直到将死、困毙、吃帅或步数上限
func playGame(m *game.Manager, red, black Player, maxPlies int, rng *rand.Rand) (result, error) {
	g, err := m.NewGame("")
	if err != nil {
		return result{}, err
	}
	defer m.Delete(g.ID)

	for ply := 0; ply < maxPlies; ply++ {
		switch st := g.Status(); st {
		case game.StatusCheckmate, game.StatusStalemate:
			// 困毙也算输
			return result{winner: g.SideToMove.Opposite(), status: st, plies: ply}, nil
		case game.StatusKingTaken:
			w := xiangqi.Red
			if !g.Pos.KingExists(xiangqi.Red) {
				w = xiangqi.Black
			}
			return result{winner: w, status: st, plies: ply}, nil
		}

		p := red
		if g.SideToMove == xiangqi.Black {
			p = black
		}
		mv := p.Pick(g, g.LegalMoves(), rng)
		if g, err = m.Play(g.ID, mv); err != nil {
			return result{}, err
		}
	}
	return result{winner: xiangqi.NoColor, status: game.StatusOngoing, plies: maxPlies}, nil
}
