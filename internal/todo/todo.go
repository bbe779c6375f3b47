// Package todo holds the task entity and the helpers that reconcile the
// local collection with server responses.
package todo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PointsPerCompletion is awarded each time a task goes from open to done.
const PointsPerCompletion = 10

const pointsPerLevel = 100

// ID is the server-assigned task identifier. The endpoint may send it as a
// JSON number or a JSON string; both decode to the same textual form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("task id is empty")
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("task id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

type Task struct {
	ID        ID     `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Find returns the task with the given id.
func Find(tasks []Task, id ID) (Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Replace swaps the entry whose id matches updated, keeping every other
// entry and the order. A missing id leaves the collection as it was.
func Replace(tasks []Task, updated Task) []Task {
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		if t.ID == updated.ID {
			out[i] = updated
			continue
		}
		out[i] = t
	}
	return out
}

// Remove drops the entry with the given id, keeping the relative order of
// the rest.
func Remove(tasks []Task, id ID) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// Remaining counts tasks that are not completed.
func Remaining(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// Score tracks the session's points. It is never persisted.
type Score struct {
	Points int
}

// Record applies one toggle transition. Only open→done earns points;
// reopening a task does not take them back.
func (s *Score) Record(wasCompleted, nowCompleted bool) bool {
	if wasCompleted || !nowCompleted {
		return false
	}
	s.Points += PointsPerCompletion
	return true
}

func (s Score) Level() int {
	return 1 + s.Points/pointsPerLevel
}
