package perft

import (
	"context"
	"testing"

	"xiangqi/internal/hashtable"
	"xiangqi/internal/xiangqi"
)

func TestCountStartPosition(t *testing.T) {
	tests := []struct {
		depth int
		want  uint64
	}{
		{depth: 0, want: 1},
		{depth: 1, want: 44},
		{depth: 2, want: 1920},
		{depth: 3, want: 79666},
	}
	for _, tt := range tests {
		p := xiangqi.NewPosition(xiangqi.StartBoard())
		before := p
		if got := Count(&p, xiangqi.Red, tt.depth); got != tt.want {
			t.Errorf("perft(%d) = %d, want %d", tt.depth, got, tt.want)
		}
		if p != before {
			t.Fatalf("perft(%d) left the position mutated", tt.depth)
		}
	}
}

func TestDivideSumsToCount(t *testing.T) {
	p := xiangqi.NewPosition(xiangqi.StartBoard())
	div := Divide(&p, xiangqi.Red, 2)
	if len(div) != 44 {
		t.Fatalf("divide has %d root moves, want 44", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 1920 {
		t.Fatalf("divide sum = %d, want 1920", sum)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	p := xiangqi.NewPosition(xiangqi.StartBoard())
	got, err := Parallel(context.Background(), &p, xiangqi.Red, 3, 4, nil)
	if err != nil {
		t.Fatalf("Parallel: %v", err)
	}
	if got != 79666 {
		t.Fatalf("parallel perft(3) = %d, want 79666", got)
	}
}

func TestParallelCancelled(t *testing.T) {
	p := xiangqi.NewPosition(xiangqi.StartBoard())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Parallel(ctx, &p, xiangqi.Red, 3, 2, nil); err == nil {
		t.Fatalf("cancelled context should abort")
	}
}

func TestCachedCountMatches(t *testing.T) {
	cache := hashtable.New(16)
	p := xiangqi.NewPosition(xiangqi.StartBoard())
	if got := CountCached(&p, xiangqi.Red, 3, cache); got != 79666 {
		t.Fatalf("cached perft(3) = %d", got)
	}
	// 第二次直接命中根节点
	if got := CountCached(&p, xiangqi.Red, 3, cache); got != 79666 {
		t.Fatalf("second cached perft(3) = %d", got)
	}
	if st := cache.Stats(); st.Hits == 0 || st.Collisions != 0 {
		t.Fatalf("cache stats = %+v", st)
	}
}

func TestCountFromMidgame(t *testing.T) {
	p, side, err := xiangqi.PositionFromFEN("3k5/4r4/9/9/9/9/4R4/9/9/4K4 w")
	if err != nil {
		t.Fatal(err)
	}
	div := Divide(&p, side, 1)
	if got := Count(&p, side, 1); uint64(len(div)) != got {
		t.Fatalf("divide(1) has %d moves, count(1) = %d", len(div), got)
	}
}
