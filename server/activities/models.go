package activities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
)

type Activity struct {
	Description     string    `json:"description"`
	Schedule        string    `json:"schedule"`
	MaxParticipants int       `json:"max_participants"`
	Participants    []string  `json:"participants"`
	Location        *Location `json:"location,omitempty"`
}

// SpotsLeft is not clamped, an over-full activity reports a negative value.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

type Location struct {
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
	Room    string   `json:"room"`
	Address string   `json:"address"`
}

// HasCoordinates reports whether both latitude and longitude were sent.
func (l *Location) HasCoordinates() bool {
	return l != nil && l.Lat != nil && l.Lng != nil
}

// Snapshot is the activities response keyed by name, kept in the order the
// server sent the object keys.
type Snapshot struct {
	names      []string
	activities map[string]Activity
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		activities: make(map[string]Activity),
	}
}

// Set adds or replaces an activity. Replacing keeps its position.
func (s *Snapshot) Set(name string, activity Activity) {
	if s.activities == nil {
		s.activities = make(map[string]Activity)
	}
	if _, ok := s.activities[name]; !ok {
		s.names = append(s.names, name)
	}
	s.activities[name] = activity
}

func (s *Snapshot) Get(name string) (Activity, bool) {
	if s == nil {
		return Activity{}, false
	}
	activity, ok := s.activities[name]
	return activity, ok
}

func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

func (s *Snapshot) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

func (s *Snapshot) All() iter.Seq2[string, Activity] {
	return func(yield func(string, Activity) bool) {
		if s == nil {
			return
		}
		for _, name := range s.names {
			if !yield(name, s.activities[name]) {
				return
			}
		}
	}
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	token, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected activities object, got %v", token)
	}

	snapshot := NewSnapshot()
	for dec.More() {
		token, err = dec.Token()
		if err != nil {
			return err
		}
		name, ok := token.(string)
		if !ok {
			return fmt.Errorf("expected activity name, got %v", token)
		}

		var activity Activity
		if err = dec.Decode(&activity); err != nil {
			return fmt.Errorf("failed to decode activity %q: %w", name, err)
		}
		snapshot.Set(name, activity)
	}

	if _, err = dec.Token(); err != nil {
		return err
	}
	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after activities object")
	}

	*s = *snapshot
	return nil
}

func (s *Snapshot) MarshalJSON() ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.activities[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type messageResp struct {
	Message string `json:"message"`
}

type errorResp struct {
	Detail json.RawMessage `json:"detail"`
}
