package domain

import "time"

// EventType categorizes a tech event.
type EventType string

const (
	EventConference EventType = "Conference"
	EventHackathon  EventType = "Hackathon"
	EventWorkshop   EventType = "Workshop"
	EventMeetup     EventType = "Meetup"
	EventWebinar    EventType = "Webinar"
	EventTechTalk   EventType = "Tech Talk"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventConference, EventHackathon, EventWorkshop, EventMeetup, EventWebinar, EventTechTalk:
		return true
	}
	return false
}

// TechEvent is a published event listing.
type TechEvent struct {
	ID               int64     `json:"id" bson:"_id"`
	Title            string    `json:"title" bson:"title"`
	Organization     string    `json:"organization" bson:"organization"`
	Description      string    `json:"description" bson:"description"`
	Venue            string    `json:"venue" bson:"venue"`
	RegistrationLink string    `json:"registration_link" bson:"registration_link"`
	StartDate        time.Time `json:"start_date" bson:"start_date"`
	EndDate          time.Time `json:"end_date" bson:"end_date"`
	Location         string    `json:"location" bson:"location"`
	Type             EventType `json:"type" bson:"type"`
	Price            string    `json:"price,omitempty" bson:"price,omitempty"`
	TechStack        []string  `json:"tech_stack" bson:"tech_stack"`
	Speakers         []string  `json:"speakers" bson:"speakers"`
	Virtual          bool      `json:"virtual" bson:"virtual"`
	Tags             []string  `json:"tags" bson:"tags"`
	Attendees        int64     `json:"attendees" bson:"attendees"`
	Likes            int64     `json:"likes" bson:"likes"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}
