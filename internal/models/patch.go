package models

// Patch types carry partial updates decoded from request bodies. A nil
// field was not supplied and leaves the stored value untouched.

type EventPatch struct {
	Month        *string `json:"month"`
	StartDate    *int    `json:"start_date"`
	Year         *int    `json:"year"`
	LectureTime  *string `json:"lecture_time"`
	ClinicalTime *string `json:"clinical_time"`
	Archived     *bool   `json:"archived"`
}

func (p EventPatch) Apply(e *Event) {
	if p.Month != nil {
		e.Month = *p.Month
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.Year != nil {
		e.Year = *p.Year
	}
	if p.LectureTime != nil {
		e.LectureTime = *p.LectureTime
	}
	if p.ClinicalTime != nil {
		e.ClinicalTime = *p.ClinicalTime
	}
	if p.Archived != nil {
		e.Archived = *p.Archived
	}
}

type TestimonialPatch struct {
	Name   *string `json:"name"`
	Source *string `json:"source"`
	Text   *string `json:"text"`
}

func (p TestimonialPatch) Apply(t *Testimonial) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Source != nil {
		t.Source = *p.Source
	}
	if p.Text != nil {
		t.Text = *p.Text
	}
}

type MessagePatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Message   *string `json:"message"`
}

func (p MessagePatch) Apply(m *Message) {
	if p.FirstName != nil {
		m.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		m.LastName = *p.LastName
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Phone != nil {
		m.Phone = *p.Phone
	}
	if p.Message != nil {
		m.Message = *p.Message
	}
}

type RegistrationPatch struct {
	FirstName  *string  `json:"first_name"`
	LastName   *string  `json:"last_name"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	AmountPaid *float64 `json:"amount_paid"`
	EventID    *int64   `json:"event_id"`
}

func (p RegistrationPatch) Apply(r *Registration) {
	if p.FirstName != nil {
		r.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		r.LastName = *p.LastName
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.AmountPaid != nil {
		r.AmountPaid = *p.AmountPaid
	}
	if p.EventID != nil {
		r.EventID = *p.EventID
	}
}
