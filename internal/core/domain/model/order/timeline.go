package order

import (
	"encoding/json"
	"time"

	"logistics/internal/pkg/errs"
)

// TimelineEntry records one status change. The timeline of an order only grows.
type TimelineEntry struct {
	Status      Status
	At          time.Time
	PerformedBy string
	Notes       string
}

type timelineEntryJSON struct {
	Status      string    `json:"status"`
	At          time.Time `json:"timestamp"`
	PerformedBy string    `json:"performedBy"`
	Notes       string    `json:"notes,omitempty"`
}

// MarshalJSON writes the status by name so stored timelines survive enum reordering.
func (e TimelineEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(timelineEntryJSON{
		Status:      e.Status.String(),
		At:          e.At,
		PerformedBy: e.PerformedBy,
		Notes:       e.Notes,
	})
}

func (e *TimelineEntry) UnmarshalJSON(data []byte) error {
	var raw timelineEntryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	st, err := ParseStatus(raw.Status)
	if err != nil {
		return err
	}
	*e = TimelineEntry{Status: st, At: raw.At, PerformedBy: raw.PerformedBy, Notes: raw.Notes}
	return nil
}

// ReplayStatus walks a timeline from Pending and returns the status it ends in.
// A leading Pending entry is the creation record and is not a transition.
// Any step that the transition table does not allow fails with InvalidTransitionError.
func ReplayStatus(timeline []TimelineEntry) (Status, error) {
	current := Pending
	for i, entry := range timeline {
		if i == 0 && entry.Status == Pending {
			continue
		}
		if !current.CanTransitionTo(entry.Status) {
			return Unknown, errs.NewInvalidTransitionError(current, entry.Status)
		}
		current = entry.Status
	}
	return current, nil
}

// Replay applies the transitions of timeline to base and returns the reproduced order.
// base is expected to be a freshly created pending order; the leading creation entry is skipped.
func Replay(base Order, timeline []TimelineEntry) (Order, error) {
	current := base
	for i, entry := range timeline {
		if i == 0 && entry.Status == Pending {
			continue
		}
		next, err := current.UpdateStatus(entry.Status, entry.PerformedBy, entry.Notes, entry.At)
		if err != nil {
			return Order{}, err
		}
		current = next
	}
	return current, nil
}

func cloneTimeline(timeline []TimelineEntry) []TimelineEntry {
	out := make([]TimelineEntry, len(timeline), len(timeline)+1)
	copy(out, timeline)
	return out
}
