// Package builders provides test data builders for level configs
package builders

import (
	"github.com/KirkDiggler/rpg-dungeon/internal/config"
)

// LevelBuilder provides a fluent interface for building test level configs
type LevelBuilder struct {
	level *config.Level
}

// NewLevelBuilder starts from the built-in tables
func NewLevelBuilder() *LevelBuilder {
	return &LevelBuilder{level: config.Default()}
}

// WithSize sets the map size
func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.level.Width = width
	b.level.Height = height
	return b
}

// WithoutPopulation spawns only the player
func (b *LevelBuilder) WithoutPopulation() *LevelBuilder {
	b.level.MaxMonsters = 0
	b.level.MaxItems = 0
	return b
}

// WithInventoryCapacity sets the player's slot count
func (b *LevelBuilder) WithInventoryCapacity(slots int) *LevelBuilder {
	b.level.InventoryCapacity = slots
	return b
}

// WithPlayerStats replaces the player's fighter stats
func (b *LevelBuilder) WithPlayerStats(hp, defense, power int) *LevelBuilder {
	b.level.Player.Stats = config.FighterStats{HP: hp, Defense: defense, Power: power}
	return b
}

// WithMonsters replaces the monster table
func (b *LevelBuilder) WithMonsters(monsters ...config.MonsterSpec) *LevelBuilder {
	b.level.Monsters = monsters
	return b
}

// Build returns the config
func (b *LevelBuilder) Build() *config.Level {
	return b.level
}
