// Package library loads solved FreeCell games. A library file holds one
// block per game: a header line "#<game number> <author>" followed by the
// solution's moves, separated by any whitespace.
package library

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/freecell-go/internal/engine"
	"github.com/lgbarn/freecell-go/internal/errors"
)

//go:embed games.txt
var builtin string

// BuiltinName is the file name reported for the embedded library.
const BuiltinName = "<builtin>"

// Game is one solved deal.
type Game struct {
	Seed   int
	Author string
	Moves  []string
}

// Library holds solved games in file order.
type Library struct {
	games map[int]*Game
	order []int
}

// New creates an empty library.
func New() *Library {
	return &Library{games: make(map[int]*Game)}
}

// Builtin returns the library shipped with the program.
func Builtin() *Library {
	lib, err := Parse(strings.NewReader(builtin), BuiltinName)
	if err != nil {
		panic(fmt.Sprintf("builtin library: %v", err))
	}
	return lib
}

// LoadFile loads a library file.
func LoadFile(path string) (*Library, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open moves file: %w", err)
	}
	defer file.Close()

	return Parse(file, path)
}

// Parse reads a library from r. name is used in error messages.
func Parse(r io.Reader, name string) (*Library, error) {
	lib := New()
	var current *Game

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			game, err := parseHeader(line)
			if err != nil {
				return nil, &errors.ParseError{Err: err, File: name, Line: lineNum, Expected: "#<game number>", Got: line}
			}
			if _, dup := lib.games[game.Seed]; dup {
				return nil, &errors.ParseError{Err: errors.ErrParseFailure, File: name, Line: lineNum, Got: "duplicate game " + strconv.Itoa(game.Seed)}
			}
			lib.Add(game)
			current = game
			continue
		}

		for _, move := range strings.Fields(line) {
			if current == nil {
				return nil, &errors.ParseError{Err: errors.ErrParseFailure, File: name, Line: lineNum, Expected: "game header", Got: move}
			}
			if _, err := engine.ParseMove(move); err != nil {
				return nil, &errors.ParseError{Err: err, File: name, Line: lineNum, Expected: "move", Got: move}
			}
			current.Moves = append(current.Moves, move)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return lib, nil
}

func parseHeader(line string) (*Game, error) {
	fields := strings.Fields(strings.TrimPrefix(line, "#"))
	if len(fields) == 0 {
		return nil, errors.ErrParseFailure
	}
	seed, err := strconv.Atoi(fields[0])
	if err != nil || seed < 1 {
		return nil, errors.ErrParseFailure
	}
	return &Game{Seed: seed, Author: strings.Join(fields[1:], " ")}, nil
}

// Add stores a game, replacing any game with the same seed.
func (l *Library) Add(g *Game) {
	if _, ok := l.games[g.Seed]; !ok {
		l.order = append(l.order, g.Seed)
	}
	l.games[g.Seed] = g
}

// Get returns the game for seed.
func (l *Library) Get(seed int) (*Game, error) {
	g, ok := l.games[seed]
	if !ok {
		return nil, fmt.Errorf("game %d: %w", seed, errors.ErrUnknownGame)
	}
	return g, nil
}

// Moves returns a copy of the solution for seed.
func (l *Library) Moves(seed int) ([]string, error) {
	g, err := l.Get(seed)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), g.Moves...), nil
}

// Seeds returns the game numbers in file order.
func (l *Library) Seeds() []int {
	return append([]int(nil), l.order...)
}

// First returns the first game number in the file.
func (l *Library) First() (int, bool) {
	if len(l.order) == 0 {
		return 0, false
	}
	return l.order[0], true
}

// Len returns the number of games.
func (l *Library) Len() int {
	return len(l.order)
}
