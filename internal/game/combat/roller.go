package combat

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

var (
	errInvalidDieSize = errors.New("die size must be positive")
	errNilRoller      = errors.New("roller is required")
)

// SeededRoller is a dice.Roller with a reproducible sequence.
// It is not safe for concurrent use; create one per fight.
type SeededRoller struct {
	seed int64
	rng  *rand.Rand
}

var _ dice.Roller = (*SeededRoller)(nil)

// NewSeededRoller creates a roller that always produces the same rolls for a seed
func NewSeededRoller(seed int64) *SeededRoller {
	s := uint64(seed)
	return &SeededRoller{
		seed: seed,
		rng:  rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed the roller was created with
func (r *SeededRoller) Seed() int64 {
	return r.seed
}

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errInvalidDieSize
	}
	return r.rng.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if size <= 0 {
		return nil, errInvalidDieSize
	}
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = r.rng.IntN(size) + 1
	}
	return rolls, nil
}

// NewSeed generates a fight seed using crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Replay re-runs an archived fight from its seed
func Replay(player, enemy Fighter, firstClear bool, seed int64) (*Result, error) {
	return Simulate(player, enemy, firstClear, NewSeededRoller(seed))
}
