// Command ffp is the CLI front end: it parses a position, runs perft or a
// fixed-depth/fixed-time search, prints the board, or hands off to the UCI
// protocol loop.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/op/go-logging"

	"github.com/dogw4t3r/ffp/internal/cliboard"
	"github.com/dogw4t3r/ffp/internal/fen"
	"github.com/dogw4t3r/ffp/internal/movestr"
	"github.com/dogw4t3r/ffp/internal/perft"
	"github.com/dogw4t3r/ffp/internal/search"
	"github.com/dogw4t3r/ffp/internal/uci"
)

var log = logging.MustGetLogger("ffp")

var (
	fenFlag      = flag.String("fen", fen.StartFEN, "FEN of the position to load")
	perftDepth   = flag.Int("perft", 0, "run perft to the given depth and print the per-move breakdown")
	searchDepth  = flag.Int("search", 0, "search to the given depth and print the best move")
	searchTimeMS = flag.Int("search-time", 0, "cap the search at this many milliseconds")
	runUCI       = flag.Bool("uci", false, "run the UCI protocol loop over stdin/stdout")
	showBoard    = flag.Bool("board", false, "print the board for -fen and exit")
)

func main() {
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		os.Exit(1)
	}

	if *runUCI {
		uci.New().Run()
		return
	}

	pos, err := fen.Parse(*fenFlag)
	if err != nil {
		log.Errorf("invalid FEN: %v", err)
		os.Exit(1)
	}

	if *showBoard {
		fmt.Println(cliboard.Render(pos))
		return
	}

	if *perftDepth > 0 {
		var total int64
		legal := pos.LegalMoves()
		for i := 0; i < legal.Len(); i++ {
			m := legal.Get(i)
			undo := pos.Make(m)
			n := perft.Count(pos, *perftDepth-1)
			pos.Unmake(m, undo)
			total += n
			fmt.Printf("%s: %d\n", movestr.Encode(m), n)
		}
		fmt.Printf("\nNodes searched: %d\n", total)
		return
	}

	if *searchDepth > 0 || *searchTimeMS > 0 {
		limits := search.Limits{MaxDepth: *searchDepth, TimeMS: *searchTimeMS}
		start := time.Now()
		result := search.New(pos).Run(limits)
		elapsed := time.Since(start)

		if legal := pos.LegalMoves(); legal.Len() == 0 {
			fmt.Println("bestmove 0000")
			return
		}
		fmt.Printf("depth %d score %d nodes %d time %s\n", result.DepthReached, result.Score, result.Nodes, elapsed)
		fmt.Println("bestmove", movestr.Encode(result.BestMove))
		return
	}

	fmt.Println(cliboard.Render(pos))
}
