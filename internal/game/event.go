package game

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StateSubject is the subject every state change is published on.
const StateSubject = "clicker.state"

// Event describes one state change: the action that caused it and the state
// that resulted.
type Event struct {
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
	Action string    `json:"action"`
	State  State     `json:"state"`
}

func NewEvent(a Action, st State) Event {
	return Event{
		ID:     uuid.New().String(),
		At:     time.Now().UTC(),
		Action: a.Name(),
		State:  st,
	}
}

func DecodeEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("decoding state event: %w", err)
	}
	return ev, nil
}
