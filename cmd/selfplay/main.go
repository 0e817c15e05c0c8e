package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

// score 是 a 对 b 的战绩
type score struct {
	aWins, bWins, draws int
	plies               int
	byKind              map[game.Status]int
}

// tournament 让 a、b 轮流执红下 games 局，第 i 局用 seed+i 做随机种子
func tournament(ctx context.Context, m *game.Manager, a, b Player, games, maxPlies, workers int, seed int64) (score, error) {
	sc := score{byKind: map[game.Status]int{}}
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i := 0; i < games; i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(seed + int64(i)))
			red, black := a, b
			if i%2 == 1 {
				red, black = b, a
			}
			res, err := playGame(m, red, black, maxPlies, rng)
			if err != nil {
				return errors.Wrapf(err, "game %d", i+1)
			}

			mu.Lock()
			defer mu.Unlock()
			sc.plies += res.plies
			sc.byKind[res.status]++
			switch {
			case res.winner == xiangqi.NoColor:
				sc.draws++
			case (res.winner == xiangqi.Red) == (i%2 == 0):
				sc.aWins++
			default:
				sc.bWins++
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return score{}, err
	}
	return sc, nil
}

func main() {
	totalGames := flag.Int("games", 100, "number of games to play")
	maxPlies := flag.Int("maxplies", 300, "ply limit before a game is scored as a draw")
	workers := flag.Int("workers", 4, "games played concurrently")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println("pprof listening on", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

	a, b := capturePlayer, randomPlayer
	start := time.Now()
	sc, err := tournament(context.Background(), game.NewManager(), a, b, *totalGames, *maxPlies, *workers, *seed)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\n=== Final Score (%d games, seed %d) ===\n", *totalGames, *seed)
	fmt.Printf("%s: %d\n", a.Name, sc.aWins)
	fmt.Printf("%s: %d\n", b.Name, sc.bWins)
	fmt.Printf("Draws: %d\n", sc.draws)
	for _, st := range []game.Status{game.StatusCheckmate, game.StatusStalemate, game.StatusKingTaken, game.StatusOngoing} {
		fmt.Printf("  %-14s %d\n", st, sc.byKind[st])
	}
	fmt.Printf("Plies: %d, %.0f plies/s\n", sc.plies, float64(sc.plies)/elapsed.Seconds())
}
