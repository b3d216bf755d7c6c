package workout

import "time"

// RestTimerTrigger is emitted when a set transitions to completed.
// The engine only emits the trigger; the actual countdown (and any
// cancellation) is owned by the consuming UI layer. Un-completing a
// set emits nothing.
type RestTimerTrigger struct {
	ExerciseIndex int       `json:"exerciseIndex"`
	SetIndex      int       `json:"setIndex"`
	Seconds       int       `json:"seconds"`
	FiredAt       time.Time `json:"firedAt"`
}

// RestTimerFunc receives rest timer triggers. Called synchronously,
// so keep it cheap.
type RestTimerFunc func(trigger RestTimerTrigger)
