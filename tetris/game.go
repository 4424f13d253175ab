package tetris

// State is the phase of a Game.
type State uint8

const (
	Running State = iota
	// Over means a freshly spawned piece could not be placed.
	Over
	// Quit means the player asked to leave.
	Quit
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Over:
		return "over"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Action is a discrete player input.
type Action uint8

const (
	ActionQuit Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionRotate
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionSoftDrop:
		return "soft-drop"
	case ActionRotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Landing describes what one gravity phase did.
type Landing struct {
	// Locked is set when the piece was merged instead of moved.
	Locked bool
	// Cleared is the number of rows removed by the lock.
	Cleared int
	// Overflow is set when the game ended during this phase.
	Overflow bool
}

// Game owns the board, the active and lookahead pieces and the score. All
// methods are synchronous transitions; nothing here blocks, draws or reads input.
type Game struct {
	cfg     Config
	catalog Catalog
	src     Source

	board   *Board
	current Piece
	next    Piece
	score   int
	state   State
	stats   *Stats
}

// NewGame validates the configuration and catalog and deals the first two
// pieces from src.
func NewGame(cfg Config, catalog Catalog, src Source) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := catalog.Validate(cfg.Columns); err != nil {
		return nil, err
	}
	board, err := NewBoard(cfg.Rows, cfg.Columns)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		catalog: catalog,
		src:     src,
		board:   board,
		stats:   newStats(),
	}
	g.current = g.spawn()
	g.next = g.spawn()
	if !g.board.Fits(g.current, 0, 0) {
		g.state = Over
	}
	return g, nil
}

func (g *Game) spawn() Piece {
	p := Spawn(g.src, g.catalog, g.cfg.Columns)
	g.stats.recordSpawn(p.Kind)
	return p
}

func (g *Game) Config() Config { return g.cfg }
func (g *Game) Board() *Board  { return g.board }
func (g *Game) Current() Piece { return g.current }
func (g *Game) Next() Piece    { return g.next }
func (g *Game) Score() int     { return g.score }
func (g *Game) State() State   { return g.state }
func (g *Game) Stats() *Stats  { return g.stats }
func (g *Game) Running() bool  { return g.state == Running }
func (g *Game) Ended() bool    { return g.state != Running }

// Apply performs one input action. Moves that do not fit are dropped and the
// piece keeps its previous position and shape. Actions after the game ended
// are ignored.
func (g *Game) Apply(a Action) {
	if g.state != Running {
		return
	}
	switch a {
	case ActionQuit:
		g.state = Quit
	case ActionMoveLeft:
		g.shift(-1, 0)
	case ActionMoveRight:
		g.shift(1, 0)
	case ActionSoftDrop:
		g.shift(0, 1)
	case ActionRotate:
		g.rotate()
	}
}

func (g *Game) shift(dx, dy int) bool {
	if !g.board.Fits(g.current, dx, dy) {
		return false
	}
	g.current = g.current.Moved(dx, dy)
	return true
}

// rotate swaps in the clockwise shape, searching horizontal offsets
// 0, -1, +1, -2, +2, ... up to the rotated width for the first that fits.
func (g *Game) rotate() bool {
	candidate := g.current.WithShape(g.current.Rotate())
	for _, dx := range KickOffsets(candidate.Shape.Width()) {
		if g.board.Fits(candidate, dx, 0) {
			g.current = candidate.Moved(dx, 0)
			return true
		}
	}
	return false
}

// KickOffsets lists the horizontal offsets tried when a rotation does not fit
// in place, nearest first and left before right.
func KickOffsets(width int) []int {
	offsets := make([]int, 0, 2*width+1)
	offsets = append(offsets, 0)
	for d := 1; d <= width; d++ {
		offsets = append(offsets, -d, d)
	}
	return offsets
}

// Gravity moves the piece down one row, or locks it when it cannot move:
// merge, clear full rows, promote the lookahead piece and deal a new one. The
// game is over when the promoted piece does not fit, or when a piece must lock
// while part of it is still above the board.
func (g *Game) Gravity() Landing {
	if g.state != Running {
		return Landing{}
	}
	if g.shift(0, 1) {
		return Landing{}
	}

	for row := range g.current.Cells() {
		if row < 0 {
			g.state = Over
			return Landing{Overflow: true}
		}
	}

	g.board.Merge(g.current)
	cleared := g.board.ClearLines()
	g.score += cleared
	g.stats.recordLock(cleared)

	g.current = g.next
	g.next = g.spawn()
	landing := Landing{Locked: true, Cleared: cleared}
	if !g.board.Fits(g.current, 0, 0) {
		g.state = Over
		landing.Overflow = true
	}
	return landing
}

// Step runs one input phase over actions followed by one gravity phase. A
// quit action stops the step before gravity.
func (g *Game) Step(actions []Action) Landing {
	for _, a := range actions {
		g.Apply(a)
		if g.state == Quit {
			return Landing{}
		}
	}
	return g.Gravity()
}
