package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/KirkDiggler/rpg-toolkit/tools/spatial"

	"github.com/KirkDiggler/rpg-dungeon/internal/entities"
	"github.com/KirkDiggler/rpg-dungeon/internal/errors"
	"github.com/KirkDiggler/rpg-dungeon/internal/pkg/handle"
)

// occupant is how an active entity is registered in the spatial room
type occupant struct {
	ref    handle.Ref
	kind   entities.Kind
	blocks bool
}

var _ spatial.Placeable = occupant{}

func (o occupant) GetID() string           { return o.ref.String() }
func (o occupant) GetType() string         { return o.kind.String() }
func (o occupant) GetSize() int            { return 1 }
func (o occupant) BlocksMovement() bool    { return o.blocks }
func (o occupant) BlocksLineOfSight() bool { return false }

// occupancy indexes the active set by cell. The room refuses to put
// anything on a cell already holding a blocker, so two blockers never
// share a cell.
type occupancy struct {
	room *spatial.BasicRoom
}

func newOccupancy(id string, width, height int, bus events.EventBus) *occupancy {
	grid := spatial.NewSquareGrid(spatial.SquareGridConfig{
		Width:  float64(width),
		Height: float64(height),
	})
	return &occupancy{
		room: spatial.NewBasicRoom(spatial.BasicRoomConfig{
			ID:       id,
			Type:     "dungeon",
			Grid:     grid,
			EventBus: bus,
		}),
	}
}

func cell(x, y int) spatial.Position {
	return spatial.Position{X: float64(x), Y: float64(y)}
}

func (o *occupancy) canPlace(occ occupant, x, y int) bool {
	return o.room.CanPlaceEntity(occ, cell(x, y))
}

func (o *occupancy) place(occ occupant, x, y int) error {
	if err := o.room.PlaceEntity(occ, cell(x, y)); err != nil {
		return errors.AlreadyExistsf("cannot place %s at (%d,%d): %v", occ.ref, x, y, err)
	}
	return nil
}

func (o *occupancy) move(ref handle.Ref, x, y int) error {
	if err := o.room.MoveEntity(ref.String(), cell(x, y)); err != nil {
		return errors.AlreadyExistsf("cannot move %s to (%d,%d): %v", ref, x, y, err)
	}
	return nil
}

func (o *occupancy) remove(ref handle.Ref) {
	// entities that never made it into the room have nothing to remove
	_ = o.room.RemoveEntity(ref.String())
}

// at lists the occupants of (x, y) in arrival order
func (o *occupancy) at(x, y int) []occupant {
	found := o.room.GetEntitiesAt(cell(x, y))
	occupants := make([]occupant, 0, len(found))
	for _, entity := range found {
		if occ, ok := entity.(occupant); ok {
			occupants = append(occupants, occ)
		}
	}
	return occupants
}

func (o *occupancy) occupied(x, y int) bool {
	return o.room.IsPositionOccupied(cell(x, y))
}
