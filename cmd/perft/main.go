package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"xiangqi/internal/hashtable"
	"xiangqi/internal/perft"
	"xiangqi/internal/store"
	"xiangqi/internal/xiangqi"
)

type options struct {
	depth     int
	fen       string
	workers   int
	tableBits uint
	cacheDir  string
	divide    bool
}

func main() {
	var opt options
	flag.IntVar(&opt.depth, "depth", 4, "perft depth")
	flag.StringVar(&opt.fen, "fen", xiangqi.StartFEN, "root position")
	flag.IntVar(&opt.workers, "workers", runtime.NumCPU(), "parallel workers, 0 = serial")
	flag.UintVar(&opt.tableBits, "table", 20, "in-memory table size as a power of two, 0 = off")
	flag.StringVar(&opt.cacheDir, "cache", "", "badger directory for persistent results")
	flag.BoolVar(&opt.divide, "divide", false, "print per-move subtree counts")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, opt)
	stop()
	if err != nil {
		log.Fatal(err)
	}
}

// run 负责打开和关闭缓存；出错也会先关掉 badger 再返回
func run(ctx context.Context, opt options) (err error) {
	pos, side, err := xiangqi.PositionFromFEN(opt.fen)
	if err != nil {
		return errors.Wrap(err, "bad fen")
	}

	var cache perft.Cache
	var table *hashtable.Table
	switch {
	case opt.cacheDir != "":
		st, oerr := store.Open(opt.cacheDir)
		if oerr != nil {
			return errors.Wrap(oerr, "open cache")
		}
		defer func() {
			if n := st.Collisions(); n > 0 {
				log.Printf("[STORE] %d key collisions", n)
			}
			if cerr := st.Close(); cerr != nil && err == nil {
				err = errors.Wrap(cerr, "close cache")
			}
		}()
		cache = st
	case opt.tableBits > 0:
		table = hashtable.New(uint8(opt.tableBits))
		cache = table
	}

	p := message.NewPrinter(language.English)
	log.Printf("============ perft(%d) %s", opt.depth, opt.fen)

	if opt.divide {
		printDivide(p, &pos, side, opt.depth)
		return nil
	}

	start := time.Now()
	var nodes uint64
	if opt.workers > 0 {
		nodes, err = perft.Parallel(ctx, &pos, side, opt.depth, opt.workers, cache)
		if err != nil {
			return errors.Wrap(err, "perft")
		}
	} else {
		nodes = perft.CountCached(&pos, side, opt.depth, cache)
	}
	elapsed := time.Since(start)

	log.Println(p.Sprintf("d=%d nodes=%d rate=%dn/s (%.3fs elapsed)",
		opt.depth, nodes, int(float64(nodes)/elapsed.Seconds()), elapsed.Seconds()))
	if table != nil {
		st := table.Stats()
		log.Println(p.Sprintf("table hits=%d misses=%d writes=%d collisions=%d", st.Hits, st.Misses, st.Writes, st.Collisions))
	}
	return nil
}

func printDivide(p *message.Printer, pos *xiangqi.Position, side xiangqi.Color, depth int) {
	start := time.Now()
	div := perft.Divide(pos, side, depth)
	moves := make([]xiangqi.Move, 0, len(div))
	for mv := range div {
		moves = append(moves, mv)
	}
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].From != moves[j].From {
			return moves[i].From < moves[j].From
		}
		return moves[i].To < moves[j].To
	})
	var total uint64
	for _, mv := range moves {
		total += div[mv]
		log.Println(p.Sprintf("%2d->%2d: %d", mv.From, mv.To, div[mv]))
	}
	log.Println(p.Sprintf("d=%d moves=%d nodes=%d (%.3fs elapsed)", depth, len(moves), total, time.Since(start).Seconds()))
}
