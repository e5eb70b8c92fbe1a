package entities

import "time"

// TrainingSession is a character's single active training.
// LastClaimTime is the accrual reference point.
type TrainingSession struct {
	CharacterID   string    `json:"character_id"`
	Stat          string    `json:"stat"`
	StartTime     time.Time `json:"start_time"`
	LastClaimTime time.Time `json:"last_claim_time"`
}
