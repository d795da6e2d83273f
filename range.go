package rutkit

import (
	"math/rand"
	"sync"
	"time"
)

// Acceptance bounds for a RUT number. The interval is half-open: MinNumber is
// the lowest accepted number, while MaxNumber is excluded from both
// validation and random sampling.
const (
	MinNumber uint32 = 1_000_000
	MaxNumber uint32 = 99_999_999
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// InRange reports whether number falls inside the accepted interval
// [MinNumber, MaxNumber).
func InRange(number uint32) bool {
	return number >= MinNumber && number < MaxNumber
}

// randomNumber draws a uniformly distributed number from the accepted
// interval. It uses src when the caller injected one, otherwise the
// mutex-guarded package source.
func randomNumber(src *rand.Rand) uint32 {
	span := int64(MaxNumber - MinNumber)

	if src != nil {
		return MinNumber + uint32(src.Int63n(span))
	}

	rngMu.Lock()
	defer rngMu.Unlock()
	return MinNumber + uint32(rng.Int63n(span))
}
