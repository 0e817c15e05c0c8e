package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/fatih/color"

	"xiangqi/internal/xiangqi"
)

var (
	redPiece   = color.New(color.FgRed, color.Bold)
	blackPiece = color.New(color.FgHiBlue, color.Bold)
	emptyCell  = color.New(color.Faint)
	marked     = color.New(color.BgYellow, color.FgBlack)
)

func printBoard(pos *xiangqi.Position, highlight xiangqi.BitAtom) {
	b := pos.Board()
	for row := 0; row < xiangqi.Rows; row++ {
		fmt.Printf("%d ", row)
		for col := 0; col < xiangqi.Cols; col++ {
			i := row*xiangqi.Cols + col
			s := b[i].String()
			c := emptyCell
			switch b[i].Color() {
			case xiangqi.Red:
				c = redPiece
			case xiangqi.Black:
				c = blackPiece
			}
			if highlight.Has(i) {
				c = marked
			}
			c.Print(s)
			fmt.Print(" ")
		}
		fmt.Println()
	}
	fmt.Println("  a b c d e f g h i")
}

func main() {
	fen := flag.String("fen", xiangqi.StartFEN, "position to inspect")
	cell := flag.Int("cell", -1, "highlight legal targets of this cell")
	flag.Parse()

	pos, side, err := xiangqi.PositionFromFEN(*fen)
	if err != nil {
		log.Fatalf("bad fen: %v", err)
	}

	var hl xiangqi.BitAtom
	if *cell >= 0 && *cell < xiangqi.NumCells {
		hl = pos.LegalMovesFrom(*cell)
	}
	printBoard(&pos, hl)

	key, lock := pos.HashFor(side)
	fmt.Println("FEN:", pos.FEN(side))
	fmt.Printf("Key: %016x Lock: %016x\n", key, lock)
	fmt.Println("To move:", side)
	fmt.Println("Pseudo legal moves:", len(pos.PseudoMoves(side)))
	fmt.Println("Legal moves:", len(pos.LegalMoves(side)))
	if pos.IsKilled(side) {
		color.Red("%v is in check", side)
	}
}
