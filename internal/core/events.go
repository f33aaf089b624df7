package core

import "fmt"

// EventKind identifies a game state transition reported to collaborators
// (audio, score persistence, UI).
type EventKind int

const (
	EventRoundStart   EventKind = iota // A new attempt began
	EventCollision                     // The body hit something; Value = life remaining
	EventGameOver                      // No attempts left; Value = final round score
	EventNewBestScore                  // Score exceeded the best; Value = new best
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventRoundStart:
		return "RoundStart"
	case EventCollision:
		return "Collision"
	case EventGameOver:
		return "GameOver"
	case EventNewBestScore:
		return "NewBestScore"
	default:
		return "Unknown"
	}
}

// Event is a single state notification.
type Event struct {
	Kind  EventKind
	Value int
}

func (e Event) String() string {
	return fmt.Sprintf("%s(%d)", e.Kind, e.Value)
}

// Observer receives state notifications. Implementations must not block:
// they are called from the tick loop.
type Observer interface {
	OnRoundStart()
	OnCollision(lifeRemaining int)
	OnGameOver(score int)
	OnNewBestScore(score int)
}

// Dispatch delivers events to an observer in order. A nil observer is ignored.
func Dispatch(events []Event, obs Observer) {
	if obs == nil {
		return
	}
	for _, ev := range events {
		switch ev.Kind {
		case EventRoundStart:
			obs.OnRoundStart()
		case EventCollision:
			obs.OnCollision(ev.Value)
		case EventGameOver:
			obs.OnGameOver(ev.Value)
		case EventNewBestScore:
			obs.OnNewBestScore(ev.Value)
		}
	}
}

// Observers fans notifications out to several observers.
type Observers []Observer

func (o Observers) OnRoundStart() {
	for _, obs := range o {
		obs.OnRoundStart()
	}
}

func (o Observers) OnCollision(lifeRemaining int) {
	for _, obs := range o {
		obs.OnCollision(lifeRemaining)
	}
}

func (o Observers) OnGameOver(score int) {
	for _, obs := range o {
		obs.OnGameOver(score)
	}
}

func (o Observers) OnNewBestScore(score int) {
	for _, obs := range o {
		obs.OnNewBestScore(score)
	}
}
