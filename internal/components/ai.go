package components

// State is the behavior an AI runs this turn
type State int

const (
	StateIdle State = iota
	StateAlert
	StateFlee
)

func (s State) String() string {
	switch s {
	case StateAlert:
		return "alert"
	case StateFlee:
		return "flee"
	default:
		return "idle"
	}
}

const (
	DefaultWanderRadius      = 5
	DefaultAwarenessDistance = 8
)

var awarenessByName = map[string]int{
	"Troll":  12,
	"Orc":    10,
	"Zombie": 6,
}

// AwarenessFor returns the sight range for a monster name
func AwarenessFor(name string) int {
	if d, ok := awarenessByName[name]; ok {
		return d
	}
	return DefaultAwarenessDistance
}

// Pos is a tile coordinate
type Pos struct {
	X, Y int
}

// AI is the per-monster state record. AwarenessDistance is fixed when the
// record is created.
type AI struct {
	State             State
	WanderRadius      int
	AwarenessDistance int
	LastKnownPlayer   *Pos
}

// NewAI creates an idle AI whose awareness comes from the monster name
func NewAI(name string) *AI {
	return &AI{
		State:             StateIdle,
		WanderRadius:      DefaultWanderRadius,
		AwarenessDistance: AwarenessFor(name),
	}
}

// Remember records where the player was last seen
func (a *AI) Remember(x, y int) {
	a.LastKnownPlayer = &Pos{X: x, Y: y}
}
