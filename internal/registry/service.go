package registry

import (
	"errors"
	"fmt"

	"registration-api/internal/logger"
	"registration-api/internal/models"
	"registration-api/internal/store"
)

// ErrNotFound reports that a referenced record does not exist.
var ErrNotFound = store.ErrNotFound

// ErrUnknownEvent reports a registration pointing at a nonexistent event.
var ErrUnknownEvent = errors.New("event does not exist")

type StoreLayer interface {
	GetEvents() ([]models.Event, error)
	GetActiveEvents() ([]models.Event, error)
	GetEventByID(id int64) (*models.Event, error)
	CreateEvent(event *models.Event) error
	UpdateEvent(event models.Event) error
	DeleteEvent(id int64) error
	EventExists(id int64) (bool, error)

	GetTestimonials() ([]models.Testimonial, error)
	GetTestimonialByID(id int64) (*models.Testimonial, error)
	CreateTestimonial(testimonial *models.Testimonial) error
	UpdateTestimonial(testimonial models.Testimonial) error
	DeleteTestimonial(id int64) error

	GetMessages() ([]models.Message, error)
	GetMessageByID(id int64) (*models.Message, error)
	CreateMessage(message *models.Message) error
	UpdateMessage(message models.Message) error
	DeleteMessage(id int64) error

	GetRegistrations() ([]models.Registration, error)
	GetRegistrationByID(id int64) (*models.Registration, error)
	CreateRegistration(registration *models.Registration) error
	UpdateRegistration(registration models.Registration) error
	DeleteRegistration(id int64) error
	CountRegistrationsByEvent(eventID int64) (int, error)
}

type Service struct {
	DB     StoreLayer
	Logger *logger.Logger
}

func NewService(db StoreLayer, log *logger.Logger) *Service {
	return &Service{DB: db, Logger: log}
}

func (s *Service) eventView(event models.Event) (models.EventView, error) {
	count, err := s.DB.CountRegistrationsByEvent(event.ID)
	if err != nil {
		return models.EventView{}, fmt.Errorf("count registrations for event %d: %w", event.ID, err)
	}
	return models.NewEventView(event, count), nil
}

func (s *Service) eventViews(events []models.Event) ([]models.EventView, error) {
	views := make([]models.EventView, 0, len(events))
	for _, event := range events {
		view, err := s.eventView(event)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Snapshot composes the public aggregate read: non-archived events and
// every testimonial. Archived events never appear here.
func (s *Service) Snapshot() (models.Snapshot, error) {
	events, err := s.DB.GetActiveEvents()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("fetch active events: %w", err)
	}
	eventViews, err := s.eventViews(events)
	if err != nil {
		return models.Snapshot{}, err
	}

	testimonials, err := s.DB.GetTestimonials()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("fetch testimonials: %w", err)
	}
	testimonialViews := make([]models.TestimonialView, 0, len(testimonials))
	for _, testimonial := range testimonials {
		testimonialViews = append(testimonialViews, models.NewTestimonialView(testimonial))
	}

	return models.Snapshot{Events: eventViews, Testimonials: testimonialViews}, nil
}
