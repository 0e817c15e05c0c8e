package perft

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"xiangqi/internal/xiangqi"
)

// Cache 以带走子方的 (key, lock) 缓存子树大小
type Cache interface {
	Probe(key, lock uint64, depth int) (uint64, bool)
	Store(key, lock uint64, depth int, nodes uint64)
}

// Count 数出 side 先走、depth 层的合法走法路径数。p 在返回时保持原样。
func Count(p *xiangqi.Position, side xiangqi.Color, depth int) uint64 {
	return count(p, side, depth, nil)
}

// CountCached 同 Count，深度大于 1 的子树结果存进 cache
func CountCached(p *xiangqi.Position, side xiangqi.Color, depth int, cache Cache) uint64 {
	return count(p, side, depth, cache)
}

func count(p *xiangqi.Position, side xiangqi.Color, depth int, cache Cache) uint64 {
	if depth <= 0 {
		return 1
	}
	if depth == 1 {
		return uint64(len(p.LegalMoves(side)))
	}
	var key, lock uint64
	if cache != nil {
		key, lock = p.HashFor(side)
		if n, ok := cache.Probe(key, lock, depth); ok {
			return n
		}
	}
	var nodes uint64
	for _, mv := range p.LegalMoves(side) {
		captured, _ := p.DoMove(mv.From, mv.To)
		if captured == xiangqi.King {
			nodes++
		} else {
			nodes += count(p, side.Opposite(), depth-1, cache)
		}
		p.UndoMove(mv.From, mv.To, captured)
	}
	if cache != nil {
		cache.Store(key, lock, depth, nodes)
	}
	return nodes
}

// Divide 按根节点走法拆分 Count
func Divide(p *xiangqi.Position, side xiangqi.Color, depth int) map[xiangqi.Move]uint64 {
	out := make(map[xiangqi.Move]uint64)
	if depth <= 0 {
		return out
	}
	for _, mv := range p.LegalMoves(side) {
		captured, _ := p.DoMove(mv.From, mv.To)
		out[mv] = count(p, side.Opposite(), depth-1, nil)
		p.UndoMove(mv.From, mv.To, captured)
	}
	return out
}

// Parallel 每个根走法克隆一份局面交给一个 goroutine；workers<=0 表示不限。
// cache 可以为 nil，不为 nil 时必须并发安全。
func Parallel(ctx context.Context, p *xiangqi.Position, side xiangqi.Color, depth, workers int, cache Cache) (uint64, error) {
	if depth <= 1 {
		return count(p, side, depth, nil), nil
	}
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	var nodes atomic.Uint64
	for _, mv := range p.LegalMoves(side) {
		child := p.Clone()
		mv := mv
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if captured, _ := child.DoMove(mv.From, mv.To); captured == xiangqi.King {
				nodes.Add(1)
				return nil
			}
			nodes.Add(count(&child, side.Opposite(), depth-1, cache))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return nodes.Load(), nil
}
