package game

import (
	"fmt"
	"math/bits"
)

// situation pairs the player to move with the position hash that was on
// the board when it was their turn. Positional superko forbids recreating
// a situation seen earlier in the same game.
type situation struct {
	player Player
	hash   uint64
}

// GameState is one node in an immutable game history. Every state owns a
// board snapshot and a link to its parent; applying a move never touches
// the receiver, it returns a fresh child. States from the same game must
// be advanced sequentially, but independent games share nothing mutable
// and can run concurrently.
type GameState struct {
	board      *Board
	nextPlayer Player
	previous   *GameState
	lastMove   *Move
	komi       float64
	seen       map[situation]struct{}

	// Thue-Morse turn override. A limit of zero means plain alternation.
	tmLimit   int
	turnIndex int
}

// Option configures a new game.
type Option func(*gameConfig)

type gameConfig struct {
	komi    *float64
	tmLimit int
}

// WithKomi fixes komi to an explicit value instead of the size-based
// default.
func WithKomi(komi float64) Option {
	return func(c *gameConfig) {
		c.komi = &komi
	}
}

// WithoutKomi disables komi entirely.
func WithoutKomi() Option {
	return func(c *gameConfig) {
		zero := 0.0
		c.komi = &zero
	}
}

// WithTurnOverride forces the mover for the first limit turns to follow
// the Thue-Morse parity sequence instead of strict alternation. Used by
// evaluation harnesses to probe opening fairness; it changes whose turn
// it is and nothing else.
func WithTurnOverride(limit int) Option {
	return func(c *gameConfig) {
		if limit > 0 {
			c.tmLimit = limit
		}
	}
}

// NewGame starts a game on a square board. Black moves first unless a
// turn override is in effect (the override also assigns turn 0 to
// Black).
func NewGame(boardSize int, opts ...Option) *GameState {
	return NewRectangularGame(boardSize, boardSize, opts...)
}

// NewRectangularGame starts a game on a rows x cols board. The default
// komi is keyed on the row count: 5.5 for 9 rows, 6.5 for 13, 7.5
// otherwise.
func NewRectangularGame(rows, cols int, opts ...Option) *GameState {
	var cfg gameConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	komi := defaultKomi(rows)
	if cfg.komi != nil {
		komi = *cfg.komi
	}

	state := &GameState{
		board:      NewBoard(rows, cols),
		nextPlayer: Black,
		komi:       komi,
		seen:       make(map[situation]struct{}),
		tmLimit:    cfg.tmLimit,
	}
	if state.tmLimit > 0 {
		state.nextPlayer = thueMorseMover(0)
	}
	return state
}

func defaultKomi(rows int) float64 {
	switch rows {
	case 9:
		return 5.5
	case 13:
		return 6.5
	default:
		return 7.5
	}
}

// thueMorseMover returns the forced mover for a turn index: Black when
// the index's bit count is even, White when odd.
func thueMorseMover(turnIndex int) Player {
	if bits.OnesCount(uint(turnIndex))%2 == 0 {
		return Black
	}
	return White
}

// Board returns the state's board snapshot. Callers must not mutate it.
func (s *GameState) Board() *Board {
	return s.board
}

// NextPlayer returns the player to move.
func (s *GameState) NextPlayer() Player {
	return s.nextPlayer
}

// Previous returns the parent state, or nil for the root.
func (s *GameState) Previous() *GameState {
	return s.previous
}

// LastMove returns the move that produced this state. ok is false for
// the root.
func (s *GameState) LastMove() (Move, bool) {
	if s.lastMove == nil {
		return Move{}, false
	}
	return *s.lastMove, true
}

// Komi returns the komi this game was created with.
func (s *GameState) Komi() float64 {
	return s.komi
}

// ApplyMove validates the move and returns the resulting child state.
// It returns ErrGameOver on a finished game and ErrIllegalMove for moves
// that fail the legality check.
func (s *GameState) ApplyMove(move Move) (*GameState, error) {
	if s.IsOver() {
		return nil, fmt.Errorf("cannot apply %v: %w", move, ErrGameOver)
	}
	if !s.IsValidMove(move) {
		return nil, fmt.Errorf("%v for %v: %w", move, s.nextPlayer, ErrIllegalMove)
	}

	board := s.board
	if move.IsPlay {
		board = s.board.Copy()
		board.PlaceStone(s.nextPlayer, move.Point)
	}
	return s.child(board, move), nil
}

// child builds the successor state. It records the situation that existed
// before the move, so every state carries the full set of situations seen
// on its ancestor chain.
func (s *GameState) child(board *Board, move Move) *GameState {
	seen := make(map[situation]struct{}, len(s.seen)+1)
	for sit := range s.seen {
		seen[sit] = struct{}{}
	}
	seen[situation{player: s.nextPlayer, hash: s.board.ZobristHash()}] = struct{}{}

	next := &GameState{
		board:    board,
		previous: s,
		lastMove: &move,
		komi:     s.komi,
		seen:     seen,
	}
	if s.tmLimit > 0 && s.turnIndex+1 < s.tmLimit {
		// Still inside the override window: the schedule picks the mover.
		next.tmLimit = s.tmLimit
		next.turnIndex = s.turnIndex + 1
		next.nextPlayer = thueMorseMover(next.turnIndex)
	} else {
		next.nextPlayer = s.nextPlayer.Other()
	}
	return next
}

// IsValidMove reports whether the move is legal in this state. Passes
// and resignations are always legal while the game is in progress; a
// play must target an empty on-grid point, must not be a self-capture,
// and must not recreate a previously seen situation.
func (s *GameState) IsValidMove(move Move) bool {
	if s.IsOver() {
		return false
	}
	if move.IsPass || move.IsResign {
		return true
	}
	return s.board.IsOnGrid(move.Point) &&
		s.board.Get(move.Point) == None &&
		!s.board.IsSelfCapture(s.nextPlayer, move.Point) &&
		!s.violatesSuperko(move)
}

// violatesSuperko simulates the play on a scratch board and checks the
// resulting situation against the ancestor chain. Only capturing plays
// can repeat a position, so anything else is filtered out up front.
func (s *GameState) violatesSuperko(move Move) bool {
	if !s.board.WillCapture(s.nextPlayer, move.Point) {
		return false
	}
	scratch := s.board.Copy()
	scratch.PlaceStone(s.nextPlayer, move.Point)
	next := situation{player: s.nextPlayer.Other(), hash: scratch.ZobristHash()}
	_, seenBefore := s.seen[next]
	return seenBefore
}

// IsOver reports whether the game has ended by resignation or by two
// consecutive passes.
func (s *GameState) IsOver() bool {
	if s.lastMove == nil {
		return false
	}
	if s.lastMove.IsResign {
		return true
	}
	if s.previous == nil || s.previous.lastMove == nil {
		return false
	}
	return s.lastMove.IsPass && s.previous.lastMove.IsPass
}

// LegalMoves returns every legal play in row-major order, followed by
// pass and resign. A finished game has no legal moves.
func (s *GameState) LegalMoves() []Move {
	if s.IsOver() {
		return nil
	}
	var moves []Move
	for r := 1; r <= s.board.NumRows(); r++ {
		for c := 1; c <= s.board.NumCols(); c++ {
			move := Play(Point{Row: r, Col: c})
			if s.IsValidMove(move) {
				moves = append(moves, move)
			}
		}
	}
	moves = append(moves, Pass(), Resign())
	return moves
}

// Winner returns the winning player of a finished game, or None while
// the game is in progress. A resignation awards the win to the player
// who was to move next.
func (s *GameState) Winner() Player {
	if !s.IsOver() {
		return None
	}
	if s.lastMove.IsResign {
		return s.nextPlayer
	}
	return ComputeGameResult(s, s.komi).Winner()
}

// Result returns the area score of a game finished by two passes. Games
// still in progress or ended by resignation carry no score; ok is false.
func (s *GameState) Result() (GameResult, bool) {
	if !s.IsOver() || s.lastMove.IsResign {
		return GameResult{}, false
	}
	return ComputeGameResult(s, s.komi), true
}
