package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevren/tetris/tetromino"
)

func TestQueueBagProperty(t *testing.T) {
	q := NewQueue(rand.New(rand.NewSource(1)))

	// Every run of seven draws from a bag boundary contains each kind
	// exactly once.
	for bag := 0; bag < 20; bag++ {
		seen := make(map[tetromino.Kind]int)
		for i := 0; i < bagSize; i++ {
			seen[q.Next()]++
		}
		for _, k := range tetromino.Kinds() {
			assert.Equal(t, 1, seen[k], "bag %d: kind %v", bag, k)
		}
	}
}

func TestQueuePeekDoesNotConsume(t *testing.T) {
	q := NewQueue(rand.New(rand.NewSource(2)))

	first, err := q.Peek(3)
	require.NoError(t, err)
	second, err := q.Peek(3)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	for _, want := range first {
		assert.Equal(t, want, q.Next())
	}
}

func TestQueuePeekRefillsProactively(t *testing.T) {
	q := NewQueue(rand.New(rand.NewSource(3)))

	// Asking for more than one bag forces extra refills rather than an
	// error.
	kinds, err := q.Peek(3 * bagSize)
	require.NoError(t, err)
	assert.Len(t, kinds, 3*bagSize)

	kinds, err = q.Peek(0)
	require.NoError(t, err)
	assert.Empty(t, kinds)
}

func TestQueueDeterministicWithSeed(t *testing.T) {
	a := NewQueue(rand.New(rand.NewSource(42)))
	b := NewQueue(rand.New(rand.NewSource(42)))

	for i := 0; i < 4*bagSize; i++ {
		assert.Equal(t, a.Next(), b.Next(), "draw %d", i)
	}

	c := NewQueue(rand.New(rand.NewSource(43)))
	var diverged bool
	d := NewQueue(rand.New(rand.NewSource(42)))
	for i := 0; i < 4*bagSize; i++ {
		if c.Next() != d.Next() {
			diverged = true
			break
		}
	}
	assert.True(t, diverged, "different seeds should produce different sequences")
}
