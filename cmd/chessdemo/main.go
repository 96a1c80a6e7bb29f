// Command chessdemo replays a list of coordinate moves from the standard
// starting position, printing the board after each one.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mway1/boardgame"
	"github.com/mway1/boardgame/chess"
	"github.com/mway1/boardgame/render"
)

func main() {
	moves := flag.String("moves", getenv("CHESSDEMO_MOVES", "e2e4,e7e5"), "comma-separated coordinate moves, e.g. e2e4,e7e5")
	svgPath := flag.String("svg", getenv("CHESSDEMO_SVG", ""), "write the final position as SVG to this file")
	color := flag.Bool("color", true, "colour pieces with ANSI escapes")
	flag.Parse()

	game, err := chess.NewGame()
	if err != nil {
		log.Fatalf("new game: %v", err)
	}
	log.Printf("game %s", game.ID())

	var opts []render.Option
	if *color {
		opts = append(opts, render.WithPalette(render.DefaultPalette()))
	}
	opts = append(opts, render.WithCoordinates())

	for _, text := range splitMoves(*moves) {
		if err := play(game, text); err != nil {
			log.Fatalf("%s: %v", text, err)
		}
		fmt.Print(render.Text(game.Grid(), opts...))
		if game.Phase() == boardgame.Complete {
			outcome, method := chess.Result(game)
			log.Printf("game over: %s by %s", outcome, method)
			break
		}
	}

	if *svgPath != "" {
		if err := writeSVG(*svgPath, game.Grid()); err != nil {
			log.Fatalf("svg: %v", err)
		}
		log.Printf("wrote %s", *svgPath)
	}
}

func play(game *boardgame.State, text string) error {
	m, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	player := game.CurrentID()
	if err := boardgame.NewTurn(player, m).Perform(game); err != nil {
		return err
	}
	check, err := chess.InCheck(game, game.CurrentID())
	if err != nil {
		return err
	}
	log.Printf("%s played %s (check: %t, turns: %d)", player, m, check, len(game.History()))
	return nil
}

func writeSVG(path string, g *boardgame.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.SVG(f, g, render.WithCoordinates()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func splitMoves(s string) []string {
	var out []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
