package game

type EventType int

const (
	EventRunStarted EventType = iota
	EventFoodEaten
	EventPowerUpCollected
	EventPowerUpExpired
	EventSnakeDied
)

// Event carries the cell the event happened at (when it has one), the
// effect kind for pickup events, and a generic amount: points awarded
// for EventFoodEaten, final score for EventSnakeDied.
type Event struct {
	Type   EventType
	Cell   Pos
	Kind   EffectKind
	Amount int
}

type EventHandler func(Event)

// EventBus decouples the game rules from their side effects. The loop
// publishes what happened; sound and particles subscribe. Single
// goroutine, synchronous dispatch.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
