// Package input buffers player actions between the host's event source and
// the fixed-rate game tick.
package input

import "github.com/plus3/blockfall/tetris"

// Queue is a FIFO of actions. Backends push as events arrive and the input
// system drains it once per tick.
type Queue struct {
	actions []tetris.Action
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends actions in arrival order.
func (q *Queue) Push(actions ...tetris.Action) {
	q.actions = append(q.actions, actions...)
}

// Drain returns every queued action, oldest first, and empties the queue.
func (q *Queue) Drain() []tetris.Action {
	if len(q.actions) == 0 {
		return nil
	}
	drained := q.actions
	q.actions = nil
	return drained
}

func (q *Queue) Len() int { return len(q.actions) }
