package service

import (
	"math/rand"

	"github.com/aliskhannn/quiz-runner/internal/domain/entities"
)

// ShuffleFunc permutes n elements through swap. rand.Shuffle satisfies it.
type ShuffleFunc func(n int, swap func(i, j int))

// DefaultShuffle uses the global math/rand source.
var DefaultShuffle ShuffleFunc = rand.Shuffle

// shuffledOrder returns 0..n-1, permuted when enabled.
func shuffledOrder(n int, enabled bool, shuffle ShuffleFunc) []int {
	order := entities.IdentityOrder(n)
	if enabled {
		shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}
	return order
}
