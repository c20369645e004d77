package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"registration-api/internal/models"
)

func (d *DB) GetEvents() ([]models.Event, error) {
	var events []models.Event
	err := d.Bun.NewSelect().
		Model(&events).
		Order("id ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (d *DB) GetActiveEvents() ([]models.Event, error) {
	var events []models.Event
	err := d.Bun.NewSelect().
		Model(&events).
		Where("archived = ?", false).
		Order("id ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (d *DB) GetEventByID(id int64) (*models.Event, error) {
	var event models.Event
	err := d.Bun.NewSelect().
		Model(&event).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, notFound(err)
	}
	return &event, nil
}

func (d *DB) CreateEvent(event *models.Event) error {
	_, err := d.Bun.NewInsert().Model(event).Exec(context.Background())
	return err
}

func (d *DB) UpdateEvent(event models.Event) error {
	_, err := d.Bun.NewUpdate().
		Model(&event).
		Column("month", "start_date", "year", "lecture_time", "clinical_time", "archived").
		Where("id = ?", event.ID).
		Exec(context.Background())
	return err
}

// DeleteEvent removes an event together with its registrations. Both
// deletes run in one transaction so a failure cannot leave orphaned
// registrations behind.
func (d *DB) DeleteEvent(id int64) error {
	ctx := context.Background()
	return d.Bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.Registration)(nil)).
			Where("event_id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete registrations for event %d: %w", id, err)
		}

		_, err = tx.NewDelete().
			Model((*models.Event)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete event %d: %w", id, err)
		}
		return nil
	})
}

func (d *DB) EventExists(id int64) (bool, error) {
	return d.Bun.NewSelect().
		Model((*models.Event)(nil)).
		Where("id = ?", id).
		Exists(context.Background())
}
