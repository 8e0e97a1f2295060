package board

import (
	"net/url"

	"github.com/topi314/activity-board/server/activities"
)

type Card struct {
	Name         string
	Description  string
	Schedule     string
	Location     *CardLocation
	SpotsLeft    int
	Participants []Participant
	Selected     bool
	SelectURL    string
	QRURL        string
}

type CardLocation struct {
	Room    string
	Address string
}

// Participant carries the activity so the removal action is bound to both.
type Participant struct {
	Activity string
	Email    string
}

// Cards renders one card per activity in snapshot order. Only the card named
// selected is marked as selected.
func Cards(snapshot *activities.Snapshot, selected string) []Card {
	cards := make([]Card, 0, snapshot.Len())
	for name, activity := range snapshot.All() {
		card := Card{
			Name:         name,
			Description:  activity.Description,
			Schedule:     activity.Schedule,
			SpotsLeft:    activity.SpotsLeft(),
			Participants: make([]Participant, len(activity.Participants)),
			Selected:     selected != "" && name == selected,
			SelectURL:    SelectURL(name),
			QRURL:        "/activities/" + url.PathEscape(name) + "/qr",
		}
		if activity.Location != nil {
			card.Location = &CardLocation{
				Room:    activity.Location.Room,
				Address: activity.Location.Address,
			}
		}
		for i, email := range activity.Participants {
			card.Participants[i] = Participant{
				Activity: name,
				Email:    email,
			}
		}
		cards = append(cards, card)
	}
	return cards
}

// Options lists the activity names for the signup select control.
func Options(snapshot *activities.Snapshot) []string {
	return snapshot.Names()
}

func SelectURL(name string) string {
	return "/select/" + url.PathEscape(name)
}
