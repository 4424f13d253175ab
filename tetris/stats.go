package tetris

import "github.com/kamstrup/intmap"

// Stats counts what happened during a game. It is read by the debug overlay.
type Stats struct {
	spawns *intmap.Map[ShapeKind, int]
	clears *intmap.Map[int, int]
	locked int
	lines  int
}

func newStats() *Stats {
	return &Stats{
		spawns: intmap.New[ShapeKind, int](8),
		clears: intmap.New[int, int](4),
	}
}

func (s *Stats) recordSpawn(k ShapeKind) {
	n, _ := s.spawns.Get(k)
	s.spawns.Put(k, n+1)
}

func (s *Stats) recordLock(cleared int) {
	s.locked++
	if cleared == 0 {
		return
	}
	s.lines += cleared
	n, _ := s.clears.Get(cleared)
	s.clears.Put(cleared, n+1)
}

// Spawned returns how many pieces of kind k entered play, lookahead included.
func (s *Stats) Spawned(k ShapeKind) int {
	n, _ := s.spawns.Get(k)
	return n
}

// Clears returns how many locks removed exactly rows lines at once.
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}

// Locked is the number of pieces merged into the board.
func (s *Stats) Locked() int { return s.locked }

// Lines is the total number of cleared rows.
func (s *Stats) Lines() int { return s.lines }
