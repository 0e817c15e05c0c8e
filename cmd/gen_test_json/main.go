package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"xiangqi/internal/xiangqi"
)

// TestCase 是一个局面和它的全部合法着法，给别的实现对拍用
type TestCase struct {
	FEN        string         `json:"fen"`
	ToMove     int            `json:"to_move"`
	Key        string         `json:"key"`
	Lock       string         `json:"lock"`
	InCheck    bool           `json:"in_check"`
	Pseudo     int            `json:"pseudo"`
	LegalMoves []xiangqi.Move `json:"legal_moves"`
}

func main() {
	numGames := flag.Int("games", 10, "number of random games")
	maxMoves := flag.Int("max-moves", 300, "ply limit per game")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase

	for g := 0; g < *numGames; g++ {
		pos := xiangqi.NewPosition(xiangqi.StartBoard())
		side := xiangqi.Red
		for ply := 0; ply < *maxMoves; ply++ {
			legal := pos.LegalMoves(side)
			key, lock := pos.HashFor(side)
			testCases = append(testCases, TestCase{
				FEN:        pos.FEN(side),
				ToMove:     int(side),
				Key:        fmt.Sprintf("%016x", key),
				Lock:       fmt.Sprintf("%016x", lock),
				InCheck:    pos.IsKilled(side),
				Pseudo:     len(pos.PseudoMoves(side)),
				LegalMoves: legal,
			})
			if len(legal) == 0 {
				break
			}

			mv := legal[rng.Intn(len(legal))]
			if _, ok := pos.DoMove(mv.From, mv.To); !ok {
				log.Fatalf("legal move %v rejected", mv)
			}
			side = side.Opposite()
		}
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %d test cases from %d random games (seed %d) to %s\n", len(testCases), *numGames, *seed, *out)
}
