package store

import (
	"context"

	"registration-api/internal/models"
)

func (d *DB) GetRegistrations() ([]models.Registration, error) {
	var registrations []models.Registration
	err := d.Bun.NewSelect().
		Model(&registrations).
		Order("id ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return registrations, nil
}

func (d *DB) GetRegistrationByID(id int64) (*models.Registration, error) {
	var registration models.Registration
	err := d.Bun.NewSelect().
		Model(&registration).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, notFound(err)
	}
	return &registration, nil
}

func (d *DB) CreateRegistration(registration *models.Registration) error {
	_, err := d.Bun.NewInsert().Model(registration).Exec(context.Background())
	return err
}

func (d *DB) UpdateRegistration(registration models.Registration) error {
	_, err := d.Bun.NewUpdate().
		Model(&registration).
		Column("first_name", "last_name", "email", "phone", "amount_paid", "event_id").
		Where("id = ?", registration.ID).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteRegistration(id int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Registration)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}

// CountRegistrationsByEvent returns the live number of registrations for
// an event. The count is recomputed on every read.
func (d *DB) CountRegistrationsByEvent(eventID int64) (int, error) {
	return d.Bun.NewSelect().
		Model((*models.Registration)(nil)).
		Where("event_id = ?", eventID).
		Count(context.Background())
}
