// Package uci implements the subset of the Universal Chess Interface
// text protocol this engine supports: uci, isready, ucinewgame,
// position, go, perft, d, setoption (accepted and ignored), and quit.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/dogw4t3r/ffp/internal/cliboard"
	"github.com/dogw4t3r/ffp/internal/fen"
	"github.com/dogw4t3r/ffp/internal/movestr"
	"github.com/dogw4t3r/ffp/internal/perft"
	"github.com/dogw4t3r/ffp/internal/position"
	"github.com/dogw4t3r/ffp/internal/search"
)

var log = logging.MustGetLogger("uci")

// UCI drives the protocol loop over a single in-memory position.
type UCI struct {
	pos *position.Position
	out *bufio.Writer
}

// New creates a UCI handler positioned at the standard starting position.
func New() *UCI {
	start, err := fen.Parse(fen.StartFEN)
	if err != nil {
		log.Errorf("failed to parse built-in start FEN: %v", err)
		start = position.New()
	}
	return &UCI{pos: start, out: bufio.NewWriter(os.Stdout)}
}

// Run reads UCI commands from stdin until "quit" or end of input.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if u.dispatch(line) {
			return
		}
	}
}

// dispatch handles one input line, returning true if the loop should stop.
func (u *UCI) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "uci":
		u.reply("id name ffp")
		u.reply("id author the ffp project")
		u.reply("uciok")
	case "isready":
		u.reply("readyok")
	case "ucinewgame":
		u.newGame()
	case "position":
		u.handlePosition(args)
	case "go":
		u.handleGo(args)
	case "perft":
		u.handlePerft(args)
	case "d":
		u.reply(cliboard.Render(u.pos))
	case "setoption":
		// No tunable options exist in this engine; accepted and ignored.
	case "quit":
		return true
	default:
		log.Debugf("unrecognized UCI command: %q", line)
	}
	return false
}

func (u *UCI) reply(s string) {
	fmt.Fprintln(u.out, s)
	u.out.Flush()
}

func (u *UCI) newGame() {
	start, err := fen.Parse(fen.StartFEN)
	if err != nil {
		log.Errorf("failed to reset to start position: %v", err)
		return
	}
	u.pos = start
}

// handlePosition implements:
//
//	position startpos [moves ...]
//	position fen <fen> [moves ...]
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var movesIdx int
	switch args[0] {
	case "startpos":
		start, err := fen.Parse(fen.StartFEN)
		if err != nil {
			log.Errorf("failed to parse start FEN: %v", err)
			return
		}
		u.pos = start
		movesIdx = 1
	case "fen":
		end := len(args)
		for i := 1; i < len(args); i++ {
			if args[i] == "moves" {
				end = i
				break
			}
		}
		parsed, err := fen.Parse(strings.Join(args[1:end], " "))
		if err != nil {
			log.Errorf("invalid FEN from position command: %v", err)
			return
		}
		u.pos = parsed
		movesIdx = end
	default:
		return
	}

	for movesIdx < len(args) && args[movesIdx] != "moves" {
		movesIdx++
	}
	movesIdx++ // skip the "moves" token itself; harmless if it was never found

	for i := movesIdx; i < len(args); i++ {
		m, ok := movestr.Decode(args[i], u.pos.LegalMoves())
		if !ok {
			log.Errorf("invalid or illegal move in position command: %s", args[i])
			return
		}
		u.pos.Make(m)
	}
}

// goOptions holds the parsed subset of "go" parameters this engine acts on.
type goOptions struct {
	depth    int
	movetime int
	nodes    uint64
	hasNodes bool
	hasDepth bool
	hasTime  bool
}

func parseGoOptions(args []string) goOptions {
	var opts goOptions
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				if v, err := strconv.Atoi(args[i+1]); err == nil {
					opts.depth, opts.hasDepth = v, true
				}
				i++
			}
		case "movetime":
			if i+1 < len(args) {
				if v, err := strconv.Atoi(args[i+1]); err == nil {
					opts.movetime, opts.hasTime = v, true
				}
				i++
			}
		case "nodes":
			if i+1 < len(args) {
				if v, err := strconv.ParseUint(args[i+1], 10, 64); err == nil {
					opts.nodes, opts.hasNodes = v, true
				}
				i++
			}
		}
	}
	return opts
}

func (u *UCI) handleGo(args []string) {
	opts := parseGoOptions(args)

	limits := search.Limits{}
	if opts.hasDepth {
		limits.MaxDepth = opts.depth
	}
	if opts.hasTime {
		limits.TimeMS = opts.movetime
	}
	if opts.hasNodes {
		limits.NodeLimit = opts.nodes
	}

	result := search.New(u.pos).Run(limits)

	u.reply(fmt.Sprintf("info depth %d score cp %d nodes %d", result.DepthReached, result.Score, result.Nodes))

	if legal := u.pos.LegalMoves(); legal.Len() == 0 {
		u.reply("bestmove 0000")
		return
	}
	u.reply("bestmove " + movestr.Encode(result.BestMove))
}

func (u *UCI) handlePerft(args []string) {
	if len(args) == 0 {
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		log.Errorf("invalid perft depth: %v", args)
		return
	}

	var total int64
	legal := u.pos.LegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		undo := u.pos.Make(m)
		n := perft.Count(u.pos, depth-1)
		u.pos.Unmake(m, undo)
		total += n
		u.reply(fmt.Sprintf("%s: %d", movestr.Encode(m), n))
	}
	u.reply(fmt.Sprintf("\nNodes searched: %d", total))
}
