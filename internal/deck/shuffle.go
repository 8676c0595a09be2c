package deck

import (
	"fmt"
	"strings"

	"github.com/arcanaland/gofish/internal/card"
)

// Rand is the source of randomness for shuffling. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// ShuffleMode selects the shuffle algorithm
type ShuffleMode string

const (
	// ShuffleClassic swaps every position with a target drawn from the whole
	// deck on each step. The resulting permutations are not uniformly
	// distributed; it is kept so seeded games replay the classic deal.
	ShuffleClassic ShuffleMode = "classic"
	// ShuffleUniform is Fisher-Yates with a shrinking range
	ShuffleUniform ShuffleMode = "uniform"
)

// ParseShuffleMode parses a mode name, case-insensitively
func ParseShuffleMode(s string) (ShuffleMode, error) {
	switch m := ShuffleMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ShuffleClassic, ShuffleUniform:
		return m, nil
	case "":
		return ShuffleClassic, nil
	default:
		return "", fmt.Errorf("unknown shuffle mode %q (want %q or %q)", s, ShuffleClassic, ShuffleUniform)
	}
}

// Shuffle permutes cards in place using rng and returns the same slice
func Shuffle(cards []card.Card, rng Rand, mode ShuffleMode) []card.Card {
	n := len(cards)
	if n < 2 {
		return cards
	}

	switch mode {
	case ShuffleUniform:
		for i := n - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			cards[i], cards[j] = cards[j], cards[i]
		}
	default:
		for i := 0; i < n; i++ {
			j := rng.Intn(n)
			cards[i], cards[j] = cards[j], cards[i]
		}
	}
	return cards
}
