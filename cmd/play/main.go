package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"othello/internal/cli"
	"othello/internal/config"
	"othello/internal/othello"
)

func main() {
	config.SetLogLevel()
	cfg := config.LoadGameConfig()

	strategyName := flag.String("strategy", cfg.Strategy,
		"computer strategy: random, maxflip or weighted (empty shows a menu)")
	colorName := flag.String("color", cfg.HumanColor, "human color: black or white")
	flag.Parse()

	human, err := othello.ParseDisc(*colorName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var strategy othello.Strategy
	if *strategyName != "" {
		strategy, err = othello.NewStrategy(*strategyName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	session := cli.NewSession(human, strategy, os.Stdin, os.Stdout)
	if err := session.Run(); err != nil {
		slog.Error("Game failed", "error", err)
		os.Exit(1)
	}
}
