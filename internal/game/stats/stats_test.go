package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hagni1/jurney/internal/game/stats"
)

func TestHP(t *testing.T) {
	assert.Equal(t, 115, stats.HP(1, 5))
	assert.Equal(t, 110, stats.HP(1, 0))

	for level := 1; level < 50; level++ {
		for strength := 0; strength < 50; strength++ {
			hp := stats.HP(level, strength)
			assert.Equal(t, 100+10*level+strength, hp)
			assert.Greater(t, stats.HP(level+1, strength), hp)
			assert.Greater(t, stats.HP(level, strength+1), hp)
		}
	}
}

func TestShieldAndDamage(t *testing.T) {
	assert.Equal(t, 25, stats.Shield(5))
	assert.Equal(t, 0, stats.Shield(0))
	assert.Equal(t, 16, stats.Damage(1, 5))
	assert.Equal(t, 11, stats.Damage(1, 0))
}

func TestAttackSpeed(t *testing.T) {
	assert.Equal(t, 15, stats.AttackSpeed(5, stats.PlayerBaseSpeed))
	assert.Equal(t, 30, stats.AttackSpeed(0, 30))
}

func TestDodgeChance(t *testing.T) {
	testCases := []struct {
		name      string
		dexterity int
		expected  float64
	}{
		{name: "zero dexterity", dexterity: 0, expected: 0},
		{name: "odd dexterity gives half point", dexterity: 5, expected: 2.5},
		{name: "just below cap", dexterity: 119, expected: 59.5},
		{name: "exactly at cap", dexterity: 120, expected: 60},
		{name: "far above cap", dexterity: 1000, expected: 60},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, stats.DodgeChance(tc.dexterity))
		})
	}
}

func TestExpFormulas(t *testing.T) {
	assert.Equal(t, 100, stats.ExpToNextLevel(1))
	assert.Equal(t, 400, stats.ExpToNextLevel(2))
	assert.Equal(t, 10000, stats.ExpToNextLevel(10))
	assert.Equal(t, 150, stats.StageExp(3))
}

func TestMaxAFKMinutes(t *testing.T) {
	assert.Equal(t, 10, stats.MaxAFKMinutes(1))
	assert.Equal(t, 10, stats.MaxAFKMinutes(10))
	assert.Equal(t, 42, stats.MaxAFKMinutes(42))
}

func TestDerive(t *testing.T) {
	block := stats.Derive(stats.Attributes{
		Level:        1,
		Strength:     5,
		Dexterity:    5,
		Intelligence: 5,
	}, stats.PlayerBaseSpeed)

	assert.Equal(t, stats.Block{
		HP:          115,
		Shield:      25,
		Damage:      16,
		AttackSpeed: 15,
		DodgeChance: 2.5,
	}, block)
}
