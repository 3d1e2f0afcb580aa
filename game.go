/*
Package chess implements the rules core of a chess engine: pseudo-legal
move generation, check detection, legality filtering and move application
on a 64-cell board, plus a Game driver that alternates turns and detects
checkmate, stalemate and the fifty move rule.

Castling, en passant, repetition and insufficient material are not part
of the rules model.

Example usage:

	// Create new game
	game := NewGame()

	// Play random moves until the game ends
	Play(game, NewRandomPlayer(1), NewRandomPlayer(2), 0, nil)

	// Check game status
	if game.Outcome() != NoOutcome {
		fmt.Printf("Game ended: %s by %s\n", game.Outcome(), game.Method())
	}
*/
package chess

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
)

// A Outcome is the result of a game.
type Outcome string

const (
	// NoOutcome indicates that a game is in progress or ended without a result.
	NoOutcome Outcome = "*"
	// WhiteWon indicates that white won the game.
	WhiteWon Outcome = "1-0"
	// BlackWon indicates that black won the game.
	BlackWon Outcome = "0-1"
	// Draw indicates that game was a draw.
	Draw Outcome = "1/2-1/2"
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

// A Method is the method that generated the outcome.
type Method uint8

const (
	// NoMethod indicates that an outcome hasn't occurred or that the method can't be determined.
	NoMethod Method = iota
	// Checkmate indicates that the game was won checkmate.
	Checkmate
	// Resignation indicates that the game was won by resignation.
	Resignation
	// DrawOffer indicates that the game was drawn by a draw offer.
	DrawOffer
	// Stalemate indicates that the game was drawn by stalemate.
	Stalemate
	// FiftyMoveRule indicates that the game was drawn by the half
	// move clock reaching one hundred.
	FiftyMoveRule
)

func (m Method) String() string {
	switch m {
	case Checkmate:
		return "Checkmate"
	case Resignation:
		return "Resignation"
	case DrawOffer:
		return "DrawOffer"
	case Stalemate:
		return "Stalemate"
	case FiftyMoveRule:
		return "FiftyMoveRule"
	}
	return "NoMethod"
}

const halfMoveClockForFiftyMoveRule = 100

var (
	// ErrInvalidMove is returned (wrapped) by Game.Move for a move that is
	// not legal in the current position.
	ErrInvalidMove = errors.New("chess: invalid move")
	// ErrGameOver is returned when a move is pushed after the game ended.
	ErrGameOver = errors.New("chess: game is over")
)

// TagPairs represents a collection of game metadata, e.g. player names.
type TagPairs map[string]string

// A Game represents a single chess game. It owns the authoritative
// position and is the only place where turns are passed.
type Game struct {
	pos                     *Position   // Current position
	outcome                 Outcome     // Game result
	method                  Method      // How the game ended
	tagPairs                TagPairs    // Metadata
	moves                   []Move      // Committed moves
	positions               []*Position // Position before each move, then the current one
	ignoreFiftyMoveRuleDraw bool        // Flag for automatic FiftyMoveRule draw handling
}

// FEN takes a string and returns a function that updates
// the game to reflect the FEN data.  Since FEN doesn't encode
// prior moves, the move list will be empty.  The returned
// function is designed to be used in the NewGame constructor.
// An error is returned if there is a problem parsing the FEN data.
func FEN(fen string) (func(*Game), error) {
	pos, err := DecodeFEN(fen)
	if err != nil {
		return nil, err
	}
	return FromPosition(pos), nil
}

// FromPosition returns a Game option that starts the game from a copy of pos.
func FromPosition(pos *Position) func(*Game) {
	return func(g *Game) {
		g.pos = pos.Copy()
		g.moves = nil
		g.positions = []*Position{g.pos.Copy()}
		g.outcome = NoOutcome
		g.method = NoMethod
		g.evaluatePositionStatus()
	}
}

// WithTagPairs returns a Game option that adds the given tag pairs.
func WithTagPairs(tags TagPairs) func(*Game) {
	return func(g *Game) {
		maps.Copy(g.tagPairs, tags)
	}
}

// IgnoreFiftyMoveRuleDraw returns a Game option that disables the automatic
// draw once one hundred half-moves pass without a pawn move or capture.
// The draw can still be claimed with Draw(FiftyMoveRule).
func IgnoreFiftyMoveRuleDraw() func(*Game) {
	return func(g *Game) {
		g.ignoreFiftyMoveRuleDraw = true
		if g.method == FiftyMoveRule {
			g.outcome = NoOutcome
			g.method = NoMethod
		}
	}
}

// NewGame returns a new game in the standard starting position.
// Optional functions can be provided to configure the initial game state.
//
// Example:
//
//	// Standard game
//	game := NewGame()
//
//	// Game from FEN
//	fen, _ := FEN("8/8/8/8/8/8/4r3/4K3 w - - 0 1")
//	game := NewGame(fen)
func NewGame(options ...func(*Game)) *Game {
	pos := StartingPosition()
	game := &Game{
		pos:       pos,
		positions: []*Position{pos.Copy()},
		tagPairs:  make(TagPairs),
		outcome:   NoOutcome,
		method:    NoMethod,
	}
	for _, f := range options {
		if f != nil {
			f(game)
		}
	}
	return game
}

// ValidMoves returns all legal moves in the current position.
func (g *Game) ValidMoves() []Move {
	return g.pos.ValidMoves()
}

// Moves returns the committed moves of the game.
func (g *Game) Moves() []Move {
	return append([]Move(nil), g.moves...)
}

// Positions returns every position of the game, starting position first
// and current position last.
func (g *Game) Positions() []*Position {
	return append([]*Position(nil), g.positions...)
}

// Position returns the game's current position.
func (g *Game) Position() *Position {
	return g.pos
}

// Outcome returns the game outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Method returns the method in which the outcome occurred.
func (g *Game) Method() Method {
	return g.method
}

// FEN returns the FEN notation of the current position.
func (g *Game) FEN() string {
	return g.pos.String()
}

// String implements the fmt.Stringer interface and returns the board
// followed by a status line.
func (g *Game) String() string {
	status := fmt.Sprintf("%s to move (half move clock %d)", g.pos.Turn().Name(), g.pos.HalfMoveClock())
	if g.outcome != NoOutcome {
		status = fmt.Sprintf("%s by %s", g.outcome, g.method)
	}
	return g.pos.Draw() + status
}

// Move validates m against the legal moves of the current position and
// commits it. It returns ErrGameOver once the game has an outcome and a
// wrapped ErrInvalidMove for an illegal move.
//
// Example:
//
//	possibleMove := game.ValidMoves()[0]
//
//	if err := game.Move(possibleMove); err != nil {
//	    panic(err)
//	}
func (g *Game) Move(m Move) error {
	if err := g.validateMove(m); err != nil {
		return err
	}
	return g.UnsafeMove(m)
}

// UnsafeMove commits m without checking it against the legal moves.
// Use this method only when m was produced by ValidMoves for the current
// position. It panics if m's origin square is empty.
func (g *Game) UnsafeMove(m Move) error {
	if g.outcome != NoOutcome {
		return ErrGameOver
	}
	g.pos.Apply(m)
	g.pos.passTurn()
	g.moves = append(g.moves, m)
	g.positions = append(g.positions, g.pos.Copy())
	g.evaluatePositionStatus()
	return nil
}

// validateMove checks if the given move is valid for the current position.
func (g *Game) validateMove(m Move) error {
	if g.outcome != NoOutcome {
		return ErrGameOver
	}
	for _, valid := range g.pos.ValidMoves() {
		if valid == m {
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not valid for the current position", ErrInvalidMove, m)
}

// Draw attempts to draw the game by the given method.  If the
// method is valid, then the game is updated to a draw by that
// method.  If the method isn't valid then an error is returned.
func (g *Game) Draw(method Method) error {
	if g.outcome != NoOutcome {
		return ErrGameOver
	}
	switch method {
	case FiftyMoveRule:
		if g.pos.halfMoveClock < halfMoveClockForFiftyMoveRule {
			return errors.New("chess: draw by FiftyMoveRule requires a half move clock of 100 or greater")
		}
	case DrawOffer:
	default:
		return errors.New("chess: invalid draw method")
	}
	g.outcome = Draw
	g.method = method
	return nil
}

// Resign resigns the game for the given color.  If the game has
// already been completed then the game is not updated.
func (g *Game) Resign(color Color) {
	if g.outcome != NoOutcome || color == NoColor {
		return
	}
	if color == White {
		g.outcome = BlackWon
	} else {
		g.outcome = WhiteWon
	}
	g.method = Resignation
}

// EligibleDraws returns valid inputs for the Draw() method.
func (g *Game) EligibleDraws() []Method {
	draws := []Method{DrawOffer}
	if g.pos.halfMoveClock >= halfMoveClockForFiftyMoveRule {
		draws = append(draws, FiftyMoveRule)
	}
	return draws
}

// AddTagPair adds or updates a tag pair with the given key and
// value and returns true if the value is overwritten.
func (g *Game) AddTagPair(k, v string) bool {
	if g.tagPairs == nil {
		g.tagPairs = make(TagPairs)
	}
	_, existing := g.tagPairs[k]
	g.tagPairs[k] = v
	return existing
}

// GetTagPair returns the tag pair for the given key or ""
// if it is not present.
func (g *Game) GetTagPair(k string) string {
	return g.tagPairs[k]
}

// TagPairs returns the tag pairs in key value format.
func (g *Game) TagPairs() TagPairs {
	return g.tagPairs
}

// RemoveTagPair removes the tag pair for the given key and
// returns true if a tag pair was removed.
func (g *Game) RemoveTagPair(k string) bool {
	if _, existing := g.tagPairs[k]; existing {
		delete(g.tagPairs, k)
		return true
	}
	return false
}

// evaluatePositionStatus updates the game's outcome and method based on the current position.
// Checkmate and stalemate are told apart by whether the side without
// moves is in check.
func (g *Game) evaluatePositionStatus() {
	switch g.pos.Status() {
	case Stalemate:
		g.method = Stalemate
		g.outcome = Draw
	case Checkmate:
		g.method = Checkmate
		g.outcome = WhiteWon
		if g.pos.Turn() == White {
			g.outcome = BlackWon
		}
	}
	if g.outcome != NoOutcome {
		return
	}

	if !g.ignoreFiftyMoveRuleDraw && g.pos.halfMoveClock >= halfMoveClockForFiftyMoveRule {
		g.outcome = Draw
		g.method = FiftyMoveRule
	}
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	ret := &Game{
		pos:                     g.pos.Copy(),
		outcome:                 g.outcome,
		method:                  g.method,
		tagPairs:                make(TagPairs, len(g.tagPairs)),
		moves:                   g.Moves(),
		positions:               make([]*Position, len(g.positions)),
		ignoreFiftyMoveRuleDraw: g.ignoreFiftyMoveRuleDraw,
	}
	maps.Copy(ret.tagPairs, g.tagPairs)
	for i, pos := range g.positions {
		ret.positions[i] = pos.Copy()
	}
	return ret
}
