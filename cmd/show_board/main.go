package main

import (
	"flag"
	"fmt"
	"os"

	"othello/internal/othello"
)

func main() {
	boardString := flag.String("board", "", "the board to show, 64 cells of '.', 'x' or 'o'")
	turnString := flag.String("turn", "black", "color whose legal moves to mark")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	turn, err := othello.ParseDisc(*turnString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	board.Print(turn)
}
