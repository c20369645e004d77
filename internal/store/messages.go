package store

import (
	"context"

	"registration-api/internal/models"
)

func (d *DB) GetMessages() ([]models.Message, error) {
	var messages []models.Message
	err := d.Bun.NewSelect().
		Model(&messages).
		Order("id ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (d *DB) GetMessageByID(id int64) (*models.Message, error) {
	var message models.Message
	err := d.Bun.NewSelect().
		Model(&message).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, notFound(err)
	}
	return &message, nil
}

func (d *DB) CreateMessage(message *models.Message) error {
	_, err := d.Bun.NewInsert().Model(message).Exec(context.Background())
	return err
}

func (d *DB) UpdateMessage(message models.Message) error {
	_, err := d.Bun.NewUpdate().
		Model(&message).
		Column("first_name", "last_name", "email", "phone", "message").
		Where("id = ?", message.ID).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteMessage(id int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Message)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}
