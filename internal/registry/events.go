package registry

import (
	"fmt"

	"registration-api/internal/models"
)

func (s *Service) ListEvents() ([]models.EventView, error) {
	events, err := s.DB.GetEvents()
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	return s.eventViews(events)
}

// AddEvent creates an event from the supplied fields. Archived always
// starts out false; flipping it takes an explicit update.
func (s *Service) AddEvent(patch models.EventPatch) (models.EventView, error) {
	var event models.Event
	patch.Apply(&event)
	event.Archived = false

	if err := s.DB.CreateEvent(&event); err != nil {
		return models.EventView{}, fmt.Errorf("create event: %w", err)
	}
	s.Logger.LogQuery("INSERT", "events", fmt.Sprintf("event %d created", event.ID))
	return s.eventView(event)
}

func (s *Service) UpdateEvent(id int64, patch models.EventPatch) (models.EventView, error) {
	event, err := s.DB.GetEventByID(id)
	if err != nil {
		return models.EventView{}, fmt.Errorf("event %d: %w", id, err)
	}

	patch.Apply(event)
	if err := s.DB.UpdateEvent(*event); err != nil {
		return models.EventView{}, fmt.Errorf("update event %d: %w", id, err)
	}
	s.Logger.LogQuery("UPDATE", "events", fmt.Sprintf("event %d updated", id))
	return s.eventView(*event)
}

// DeleteEvent removes the event and all of its registrations, returning
// the event's last serialized state.
func (s *Service) DeleteEvent(id int64) (models.EventView, error) {
	event, err := s.DB.GetEventByID(id)
	if err != nil {
		return models.EventView{}, fmt.Errorf("event %d: %w", id, err)
	}

	view, err := s.eventView(*event)
	if err != nil {
		return models.EventView{}, err
	}

	if err := s.DB.DeleteEvent(id); err != nil {
		return models.EventView{}, fmt.Errorf("delete event %d: %w", id, err)
	}
	s.Logger.LogQuery("DELETE", "events", fmt.Sprintf("event %d and its registrations removed", id))
	return view, nil
}
