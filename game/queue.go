package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/sevren/tetris/tetromino"
)

// bagSize is one full bag: every kind exactly once.
var bagSize = len(tetromino.Kinds())

// ErrInsufficientQueue is returned by Queue.Peek when the queue cannot
// buffer the requested number of pieces. The queue refills itself
// before answering, so this is unreachable in normal operation.
var ErrInsufficientQueue = errors.New("game: insufficient pieces buffered in queue")

// Queue produces the sequence of upcoming piece kinds using a 7-bag
// randomizer: kinds are drawn from shuffled permutations of all seven,
// so every kind appears exactly once per seven draws from a bag
// boundary. Given the same rand source, two queues produce identical
// sequences.
type Queue struct {
	rng   *rand.Rand
	kinds []tetromino.Kind
}

// NewQueue returns a queue drawing from rng. A nil rng gets a
// time-seeded source.
func NewQueue(rng *rand.Rand) *Queue {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	q := &Queue{rng: rng}
	q.topUp(bagSize)
	return q
}

// Peek returns the next n kinds without consuming them.
func (q *Queue) Peek(n int) ([]tetromino.Kind, error) {
	if n <= 0 {
		return nil, nil
	}
	q.topUp(n)
	if len(q.kinds) < n {
		return nil, ErrInsufficientQueue
	}
	out := make([]tetromino.Kind, n)
	copy(out, q.kinds[:n])
	return out, nil
}

// Next removes and returns the next kind, refilling the buffer with a
// fresh bag whenever it drops below one bag's worth.
func (q *Queue) Next() tetromino.Kind {
	k := q.kinds[0]
	q.kinds = q.kinds[1:]
	q.topUp(bagSize)
	return k
}

func (q *Queue) topUp(n int) {
	for len(q.kinds) < n {
		q.refill()
	}
}

func (q *Queue) refill() {
	kinds := tetromino.Kinds()
	for _, i := range q.rng.Perm(len(kinds)) {
		q.kinds = append(q.kinds, kinds[i])
	}
}
