// Package config holds the level tables and sizes. Everything has a default
// so a YAML file only needs the fields it changes.
package config

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
)

// Color is an RGB triple passed through to front ends
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// FighterStats seeds a fighter component
type FighterStats struct {
	HP      int `yaml:"hp"`
	Defense int `yaml:"defense"`
	Power   int `yaml:"power"`
}

// PlayerSpec describes the player entity
type PlayerSpec struct {
	Name  string       `yaml:"name"`
	Glyph string       `yaml:"glyph"`
	Color Color        `yaml:"color"`
	Stats FighterStats `yaml:"stats"`
}

// MonsterSpec is one row of the monster table. Weight is a spawn chance
// in [0, 1]; the table is normalized so the weights need not sum to one.
type MonsterSpec struct {
	Name   string       `yaml:"name"`
	Glyph  string       `yaml:"glyph"`
	Color  Color        `yaml:"color"`
	Weight float64      `yaml:"weight"`
	Stats  FighterStats `yaml:"stats"`
}

// ItemSpec is one row of the item table. Items are picked uniformly.
type ItemSpec struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color Color  `yaml:"color"`
}

// Level is the full set of level parameters
type Level struct {
	Width             int `yaml:"width"`
	Height            int `yaml:"height"`
	MinRoomSize       int `yaml:"min_room_size"`
	PoolCapacity      int `yaml:"pool_capacity"`
	InventoryCapacity int `yaml:"inventory_capacity"`

	// MaxMonsters caps the monster count; the map also allows one monster
	// per MonsterArea cells.
	MaxMonsters int `yaml:"max_monsters"`
	MonsterArea int `yaml:"monster_area"`
	MaxItems    int `yaml:"max_items"`
	ItemArea    int `yaml:"item_area"`

	// PlacementAttempts bounds the random draws for the player spawn and
	// for each placement phase
	PlacementAttempts int `yaml:"placement_attempts"`

	Player   PlayerSpec    `yaml:"player"`
	Monsters []MonsterSpec `yaml:"monsters"`
	Items    []ItemSpec    `yaml:"items"`
}

// Default returns the stock level
func Default() *Level {
	return &Level{
		Width:             80,
		Height:            50,
		MinRoomSize:       6,
		PoolCapacity:      10000,
		InventoryCapacity: 26,
		MaxMonsters:       20,
		MonsterArea:       30,
		MaxItems:          15,
		ItemArea:          40,
		PlacementAttempts: 1000,
		Player: PlayerSpec{
			Name:  "Player",
			Glyph: "@",
			Color: Color{R: 255, G: 255, B: 255},
			Stats: FighterStats{HP: 30, Defense: 2, Power: 5},
		},
		Monsters: []MonsterSpec{
			{Name: "Kobold", Glyph: "k", Color: Color{R: 255}, Weight: 0.4, Stats: FighterStats{HP: 10, Defense: 0, Power: 3}},
			{Name: "Rat", Glyph: "r", Color: Color{R: 139, G: 69, B: 19}, Weight: 0.3, Stats: FighterStats{HP: 5, Defense: 0, Power: 2}},
			{Name: "Orc", Glyph: "o", Color: Color{G: 128}, Weight: 0.2, Stats: FighterStats{HP: 15, Defense: 1, Power: 4}},
			{Name: "Zombie", Glyph: "z", Color: Color{G: 100}, Weight: 0.08, Stats: FighterStats{HP: 20, Defense: 2, Power: 3}},
			{Name: "Troll", Glyph: "T", Color: Color{R: 128, B: 128}, Weight: 0.02, Stats: FighterStats{HP: 30, Defense: 3, Power: 8}},
		},
		Items: []ItemSpec{
			{Name: "Potion", Glyph: "!", Color: Color{G: 255, B: 255}},
			{Name: "Scroll", Glyph: "?", Color: Color{R: 255, G: 255}},
			{Name: "Sword", Glyph: "/", Color: Color{R: 200, G: 200, B: 200}},
			{Name: "Armor", Glyph: "[", Color: Color{R: 150, G: 150, B: 150}},
		},
	}
}

// MonsterBudget returns how many monsters a level of this size gets
func (l *Level) MonsterBudget() int {
	return budget(l.MaxMonsters, l.Width*l.Height, l.MonsterArea)
}

// ItemBudget returns how many items a level of this size gets
func (l *Level) ItemBudget() int {
	return budget(l.MaxItems, l.Width*l.Height, l.ItemArea)
}

func budget(limit, cells, area int) int {
	if area <= 0 {
		return limit
	}
	return min(limit, cells/area)
}

// Validate checks sizes and tables
func (l *Level) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateMinimum("width", l.Width, 8, vb)
	errors.ValidateMinimum("height", l.Height, 8, vb)
	errors.ValidateMinimum("min_room_size", l.MinRoomSize, 1, vb)
	errors.ValidateMinimum("pool_capacity", l.PoolCapacity, 1, vb)
	errors.ValidateRange("inventory_capacity", l.InventoryCapacity, 1, 26, vb)
	errors.ValidateMinimum("max_monsters", l.MaxMonsters, 0, vb)
	errors.ValidateMinimum("max_items", l.MaxItems, 0, vb)
	errors.ValidateMinimum("placement_attempts", l.PlacementAttempts, 1, vb)

	validateGlyph("player.glyph", l.Player.Glyph, vb)
	errors.ValidateRequired("player.name", l.Player.Name, vb)
	errors.ValidateMinimum("player.stats.hp", l.Player.Stats.HP, 1, vb)

	if l.MaxMonsters > 0 && len(l.Monsters) == 0 {
		vb.Field("monsters", "at least one monster is required when max_monsters > 0")
	}
	total := 0.0
	for i, m := range l.Monsters {
		errors.ValidateRequired(indexed("monsters", i, "name"), m.Name, vb)
		validateGlyph(indexed("monsters", i, "glyph"), m.Glyph, vb)
		errors.ValidateMinimum(indexed("monsters", i, "stats.hp"), m.Stats.HP, 1, vb)
		errors.ValidateFraction(indexed("monsters", i, "weight"), m.Weight, vb)
		total += m.Weight
	}
	if len(l.Monsters) > 0 && total <= 0 {
		vb.Field("monsters", "weights must sum to more than zero")
	}

	if l.MaxItems > 0 && len(l.Items) == 0 {
		vb.Field("items", "at least one item is required when max_items > 0")
	}
	for i, it := range l.Items {
		errors.ValidateRequired(indexed("items", i, "name"), it.Name, vb)
		validateGlyph(indexed("items", i, "glyph"), it.Glyph, vb)
	}

	return vb.Build()
}

// LoadYAML reads a level from r on top of Default. An empty document
// yields the defaults.
func LoadYAML(r io.Reader) (*Level, error) {
	level := Default()
	if err := yaml.NewDecoder(r).Decode(level); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode level config")
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	return level, nil
}

// LoadFile reads a YAML level file
func LoadFile(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "failed to open config %s", path)
	}
	defer f.Close()

	return LoadYAML(f)
}

// Rune returns the first rune of a one-character glyph string
func Rune(glyph string) rune {
	r, _ := utf8.DecodeRuneInString(glyph)
	return r
}

func validateGlyph(field, glyph string, vb *errors.ValidationBuilder) {
	if utf8.RuneCountInString(glyph) != 1 {
		vb.Field(field, "must be exactly one character")
	}
}

func indexed(list string, i int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, i, field)
}
