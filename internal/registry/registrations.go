package registry

import (
	"fmt"

	"registration-api/internal/models"
)

func (s *Service) ListRegistrations() ([]models.RegistrationView, error) {
	registrations, err := s.DB.GetRegistrations()
	if err != nil {
		return nil, fmt.Errorf("fetch registrations: %w", err)
	}
	views := make([]models.RegistrationView, 0, len(registrations))
	for _, registration := range registrations {
		views = append(views, models.NewRegistrationView(registration))
	}
	return views, nil
}

// AddRegistration creates a registration after verifying the referenced
// event exists. A registration cannot exist without a valid event.
func (s *Service) AddRegistration(patch models.RegistrationPatch) (models.RegistrationView, error) {
	var registration models.Registration
	patch.Apply(&registration)

	exists, err := s.DB.EventExists(registration.EventID)
	if err != nil {
		return models.RegistrationView{}, fmt.Errorf("check event %d: %w", registration.EventID, err)
	}
	if !exists {
		return models.RegistrationView{}, fmt.Errorf("event %d: %w", registration.EventID, ErrUnknownEvent)
	}

	if err := s.DB.CreateRegistration(&registration); err != nil {
		return models.RegistrationView{}, fmt.Errorf("create registration: %w", err)
	}
	s.Logger.LogQuery("INSERT", "registrations", fmt.Sprintf("registration %d created for event %d", registration.ID, registration.EventID))
	return models.NewRegistrationView(registration), nil
}

func (s *Service) UpdateRegistration(id int64, patch models.RegistrationPatch) (models.RegistrationView, error) {
	registration, err := s.DB.GetRegistrationByID(id)
	if err != nil {
		return models.RegistrationView{}, fmt.Errorf("registration %d: %w", id, err)
	}

	patch.Apply(registration)

	exists, err := s.DB.EventExists(registration.EventID)
	if err != nil {
		return models.RegistrationView{}, fmt.Errorf("check event %d: %w", registration.EventID, err)
	}
	if !exists {
		return models.RegistrationView{}, fmt.Errorf("event %d: %w", registration.EventID, ErrUnknownEvent)
	}

	if err := s.DB.UpdateRegistration(*registration); err != nil {
		return models.RegistrationView{}, fmt.Errorf("update registration %d: %w", id, err)
	}
	s.Logger.LogQuery("UPDATE", "registrations", fmt.Sprintf("registration %d updated", id))
	return models.NewRegistrationView(*registration), nil
}

func (s *Service) DeleteRegistration(id int64) (models.RegistrationView, error) {
	registration, err := s.DB.GetRegistrationByID(id)
	if err != nil {
		return models.RegistrationView{}, fmt.Errorf("registration %d: %w", id, err)
	}

	if err := s.DB.DeleteRegistration(id); err != nil {
		return models.RegistrationView{}, fmt.Errorf("delete registration %d: %w", id, err)
	}
	s.Logger.LogQuery("DELETE", "registrations", fmt.Sprintf("registration %d removed", id))
	return models.NewRegistrationView(*registration), nil
}
