package core

// EventKind identifies a gameplay notification.
type EventKind int

const (
	EventBombDropped    EventKind = iota + 1 // A bomb left the plane
	EventLevelDestroyed                      // A bomb took one level off a building
	EventBombSpent                           // A bomb detonated against a building
	EventBombMissed                          // A bomb reached the ground
	EventPlaneCrashed                        // The plane flew into a building
	EventPlaneLanded                         // The plane reached the landing row
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBombDropped:
		return "bomb_dropped"
	case EventLevelDestroyed:
		return "level_destroyed"
	case EventBombSpent:
		return "bomb_spent"
	case EventBombMissed:
		return "bomb_missed"
	case EventPlaneCrashed:
		return "plane_crashed"
	case EventPlaneLanded:
		return "plane_landed"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation so hosts can react (sound cues, logs)
// without the simulation calling into them.
type Event struct {
	Kind     EventKind
	Bomb     int // Bomb slot, -1 when not applicable
	Building int // Building column, -1 when not applicable
}
