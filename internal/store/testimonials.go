package store

import (
	"context"

	"registration-api/internal/models"
)

func (d *DB) GetTestimonials() ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := d.Bun.NewSelect().
		Model(&testimonials).
		Order("id ASC").
		Scan(context.Background())
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (d *DB) GetTestimonialByID(id int64) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	err := d.Bun.NewSelect().
		Model(&testimonial).
		Where("id = ?", id).
		Limit(1).
		Scan(context.Background())
	if err != nil {
		return nil, notFound(err)
	}
	return &testimonial, nil
}

func (d *DB) CreateTestimonial(testimonial *models.Testimonial) error {
	_, err := d.Bun.NewInsert().Model(testimonial).Exec(context.Background())
	return err
}

func (d *DB) UpdateTestimonial(testimonial models.Testimonial) error {
	_, err := d.Bun.NewUpdate().
		Model(&testimonial).
		Column("name", "source", "text").
		Where("id = ?", testimonial.ID).
		Exec(context.Background())
	return err
}

func (d *DB) DeleteTestimonial(id int64) error {
	_, err := d.Bun.NewDelete().
		Model((*models.Testimonial)(nil)).
		Where("id = ?", id).
		Exec(context.Background())
	return err
}
