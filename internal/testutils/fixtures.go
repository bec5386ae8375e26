// Package testutils holds shared fixtures for level tests
package testutils

import (
	"strings"

	"github.com/KirkDiggler/rpg-dungeon/internal/config"
)

const (
	// SmallWidth and SmallHeight size levels that generate quickly but
	// still split into several rooms
	SmallWidth  = 30
	SmallHeight = 20
)

// SmallLevel returns the default tables on a SmallWidth x SmallHeight map
func SmallLevel() *config.Level {
	lvl := config.Default()
	lvl.Width = SmallWidth
	lvl.Height = SmallHeight
	return lvl
}

// RoomRows draws a width x height room: floor inside a one-cell wall border
func RoomRows(width, height int) []string {
	rows := make([]string, height)
	for y := range rows {
		if y == 0 || y == height-1 {
			rows[y] = strings.Repeat("#", width)
			continue
		}
		rows[y] = "#" + strings.Repeat(".", width-2) + "#"
	}
	return rows
}
