package models

import (
	"github.com/uptrace/bun"
)

// Event is a scheduled course offering. Registrations reference events by
// id and are removed together with their event.
type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID           int64  `bun:"id,pk,autoincrement"`
	Month        string `bun:"month"`
	StartDate    int    `bun:"start_date"`
	Year         int    `bun:"year"`
	LectureTime  string `bun:"lecture_time"`
	ClinicalTime string `bun:"clinical_time"`
	Archived     bool   `bun:"archived,notnull,default:false"`
}

type Testimonial struct {
	bun.BaseModel `bun:"table:testimonials"`

	ID     int64  `bun:"id,pk,autoincrement"`
	Name   string `bun:"name"`
	Source string `bun:"source"`
	Text   string `bun:"text"`
}

// Message is a contact-form submission.
type Message struct {
	bun.BaseModel `bun:"table:messages"`

	ID        int64  `bun:"id,pk,autoincrement"`
	FirstName string `bun:"first_name"`
	LastName  string `bun:"last_name"`
	Email     string `bun:"email"`
	Phone     string `bun:"phone"`
	Message   string `bun:"message"`
}

type Registration struct {
	bun.BaseModel `bun:"table:registrations"`

	ID         int64   `bun:"id,pk,autoincrement"`
	FirstName  string  `bun:"first_name"`
	LastName   string  `bun:"last_name"`
	Email      string  `bun:"email"`
	Phone      string  `bun:"phone"`
	AmountPaid float64 `bun:"amount_paid"`
	EventID    int64   `bun:"event_id,notnull"`
}
