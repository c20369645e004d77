package models

// View types are the external JSON shape of each entity. Fields are an
// explicit allow-list; EventView additionally carries the live
// registration count, which is computed on every read and never stored.

type EventView struct {
	ID                 int64  `json:"id"`
	Month              string `json:"month"`
	StartDate          int    `json:"start_date"`
	Year               int    `json:"year"`
	LectureTime        string `json:"lecture_time"`
	ClinicalTime       string `json:"clinical_time"`
	Archived           bool   `json:"archived"`
	RegistrationsCount int    `json:"registrations_count"`
}

func NewEventView(e Event, registrations int) EventView {
	return EventView{
		ID:                 e.ID,
		Month:              e.Month,
		StartDate:          e.StartDate,
		Year:               e.Year,
		LectureTime:        e.LectureTime,
		ClinicalTime:       e.ClinicalTime,
		Archived:           e.Archived,
		RegistrationsCount: registrations,
	}
}

type TestimonialView struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
	Text   string `json:"text"`
}

func NewTestimonialView(t Testimonial) TestimonialView {
	return TestimonialView{ID: t.ID, Name: t.Name, Source: t.Source, Text: t.Text}
}

type MessageView struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

func NewMessageView(m Message) MessageView {
	return MessageView{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
	}
}

type RegistrationView struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	AmountPaid float64 `json:"amount_paid"`
	EventID    int64   `json:"event_id"`
}

func NewRegistrationView(r Registration) RegistrationView {
	return RegistrationView{
		ID:         r.ID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Phone:      r.Phone,
		AmountPaid: r.AmountPaid,
		EventID:    r.EventID,
	}
}

// Snapshot is the public aggregate read: every non-archived event plus
// every testimonial.
type Snapshot struct {
	Events       []EventView       `json:"events"`
	Testimonials []TestimonialView `json:"testimonials"`
}
