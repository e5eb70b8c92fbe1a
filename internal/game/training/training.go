// Package training computes offline stat gains for a character in training.
package training

import (
	"fmt"
	"strings"
	"time"

	"github.com/Hagni1/jurney/internal/game/stats"
)

// MinutesPerPoint is the number of trained minutes that yield one stat point
const MinutesPerPoint = 3

// Stat is an attribute a character can train
type Stat string

const (
	StatStrength     Stat = "strength"
	StatDexterity    Stat = "dexterity"
	StatIntelligence Stat = "intelligence"
)

// Stats lists every trainable stat
var Stats = []Stat{StatStrength, StatDexterity, StatIntelligence}

// ParseStat validates a stat name. Matching is case-insensitive.
func ParseStat(s string) (Stat, error) {
	stat := Stat(strings.ToLower(strings.TrimSpace(s)))
	switch stat {
	case StatStrength, StatDexterity, StatIntelligence:
		return stat, nil
	default:
		return "", fmt.Errorf("unknown stat %q", s)
	}
}

func (s Stat) String() string {
	return string(s)
}

// Accrual is the state of a training session at a point in time
type Accrual struct {
	ElapsedMinutes int
	CappedMinutes  int
	StatGains      int
	MaxAFKMinutes  int
}

// Accrue computes what a session started (or last claimed) at lastClaim has earned by now.
// A lastClaim in the future counts as zero elapsed minutes.
func Accrue(level int, lastClaim, now time.Time) Accrual {
	maxMinutes := stats.MaxAFKMinutes(level)

	elapsed := max(0, int(now.Sub(lastClaim)/time.Minute))
	capped := min(elapsed, maxMinutes)

	return Accrual{
		ElapsedMinutes: elapsed,
		CappedMinutes:  capped,
		StatGains:      capped / MinutesPerPoint,
		MaxAFKMinutes:  maxMinutes,
	}
}
