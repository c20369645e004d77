package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"registration-api/internal/models"
	"registration-api/internal/store"
)

func TestTestimonialCRUD(t *testing.T) {
	db, bunDB := setupTestDB(t)
	defer bunDB.Close()

	testimonial := models.Testimonial{
		Name:   "Alice",
		Source: "Google",
		Text:   "Great program!",
	}
	assert.NoError(t, db.CreateTestimonial(&testimonial))
	assert.NotZero(t, testimonial.ID)

	got, err := db.GetTestimonialByID(testimonial.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	got.Text = "Updated review"
	assert.NoError(t, db.UpdateTestimonial(*got))

	updated, err := db.GetTestimonialByID(testimonial.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Updated review", updated.Text)
	assert.Equal(t, "Google", updated.Source)

	assert.NoError(t, db.DeleteTestimonial(testimonial.ID))
	_, err = db.GetTestimonialByID(testimonial.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	testimonials, err := db.GetTestimonials()
	assert.NoError(t, err)
	assert.Equal(t, 0, len(testimonials))
}

func TestMessageCRUD(t *testing.T) {
	db, bunDB := setupTestDB(t)
	defer bunDB.Close()

	message := models.Message{
		FirstName: "Bob",
		LastName:  "Smith",
		Email:     "bob@example.com",
		Phone:     "555-1234",
		Message:   "When does the next class start?",
	}
	assert.NoError(t, db.CreateMessage(&message))

	got, err := db.GetMessageByID(message.ID)
	assert.NoError(t, err)
	assert.Equal(t, "bob@example.com", got.Email)

	got.Phone = "555-9999"
	assert.NoError(t, db.UpdateMessage(*got))

	updated, err := db.GetMessageByID(message.ID)
	assert.NoError(t, err)
	assert.Equal(t, "555-9999", updated.Phone)
	assert.Equal(t, "Bob", updated.FirstName)

	assert.NoError(t, db.DeleteMessage(message.ID))
	_, err = db.GetMessageByID(message.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRegistrationCRUD(t *testing.T) {
	db, bunDB := setupTestDB(t)
	defer bunDB.Close()

	event := models.Event{Month: "June", StartDate: 15, Year: 2024}
	assert.NoError(t, db.CreateEvent(&event))

	registration := models.Registration{
		FirstName:  "Jane",
		LastName:   "Doe",
		Email:      "jane@example.com",
		Phone:      "555-0000",
		AmountPaid: 50.0,
		EventID:    event.ID,
	}
	assert.NoError(t, db.CreateRegistration(&registration))

	got, err := db.GetRegistrationByID(registration.ID)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, got.AmountPaid)
	assert.Equal(t, event.ID, got.EventID)

	got.AmountPaid = 75.0
	assert.NoError(t, db.UpdateRegistration(*got))

	updated, err := db.GetRegistrationByID(registration.ID)
	assert.NoError(t, err)
	assert.Equal(t, 75.0, updated.AmountPaid)
	assert.Equal(t, "jane@example.com", updated.Email)

	assert.NoError(t, db.DeleteRegistration(registration.ID))
	_, err = db.GetRegistrationByID(registration.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
