package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "github.com/uptrace/bun/driver/sqliteshim"

	"registration-api/internal/logger"
	"registration-api/internal/models"
	"registration-api/internal/registry"
	"registration-api/internal/registry/api"
	"registration-api/internal/store"
	"registration-api/internal/utils"
)

func setupRouter(t *testing.T) (*chi.Mux, *bun.DB) {
	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to connect to in-memory database: %v", err)
	}
	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	db := store.New(bunDB)
	if err := db.CreateSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	log := logger.NewNop()
	handler := api.NewHandler(registry.NewService(db, log), log)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, bunDB
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (utils.Envelope, json.RawMessage) {
	var envelope struct {
		Status  int             `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("Failed to decode envelope: %v", err)
	}
	return utils.Envelope{Status: envelope.Status, Message: envelope.Message}, envelope.Data
}

func TestAddEventScenario(t *testing.T) {
	r, bunDB := setupRouter(t)
	defer bunDB.Close()

	w := doJSON(t, r, http.MethodPost, "/event/add", map[string]interface{}{
		"month":         "June",
		"start_date":    15,
		"year":          2024,
		"lecture_time":  "9am",
		"clinical_time": "1pm",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	envelope, data := decodeEnvelope(t, w)
	assert.Equal(t, 200, envelope.Status)
	assert.Equal(t, "Event Added", envelope.Message)

	var event models.EventView
	assert.NoError(t, json.Unmarshal(data, &event))
	assert.False(t, event.Archived)
	assert.Equal(t, 0, event.RegistrationsCount)

	// Registration create bumps the event's live count
	w = doJSON(t, r, http.MethodPost, "/registration/add", map[string]interface{}{
		"first_name":  "Jane",
		"last_name":   "Doe",
		"email":       "jane@example.com",
		"phone":       "555-0000",
		"amount_paid": 50.0,
		"event_id":    event.ID,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	envelope, _ = decodeEnvelope(t, w)
	assert.Equal(t, "Registration Added", envelope.Message)

	w = doJSON(t, r, http.MethodGet, "/event/get", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var events []models.EventView
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	assert.Equal(t, 1, len(events))
	assert.Equal(t, 1, events[0].RegistrationsCount)

	// Deleting the event removes its registrations
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/event/delete/%d", event.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	envelope, _ = decodeEnvelope(t, w)
	assert.Equal(t, "Event Deleted", envelope.Message)

	w = doJSON(t, r, http.MethodGet, "/registration/get", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var registrations []models.RegistrationView
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &registrations))
	assert.Equal(t, 0, len(registrations))
}

func TestAddTestimonialRejectsNonJSON(t *testing.T) {
	r, bunDB := setupRouter(t)
	defer bunDB.Close()

	req := httptest.NewRequest(http.MethodPost, "/testimonial/add", bytes.NewBufferString("name=Alice"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	envelope, data := decodeEnvelope(t, w)
	assert.Equal(t, 400, envelope.Status)
	assert.Equal(t, "Error: Data must be sent as JSON.", envelope.Message)
	assert.Equal(t, "{}", string(data))
}

func TestUpdateMissingRecordReturns404(t *testing.T) {
	r, bunDB := setupRouter(t)
	defer bunDB.Close()

	w := doJSON(t, r, http.MethodPut, "/event/update/42", map[string]interface{}{"month": "July"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	envelope, _ := decodeEnvelope(t, w)
	assert.Equal(t, 404, envelope.Status)
	assert.Equal(t, "Event Not Found", envelope.Message)

	w = doJSON(t, r, http.MethodDelete, "/testimonial/delete/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	envelope, _ = decodeEnvelope(t, w)
	assert.Equal(t, "Testimonial Not Found", envelope.Message)
}

func TestPartialUpdateThroughAPI(t *testing.T) {
	r, bunDB := setupRouter(t)
	defer bunDB.Close()

	w := doJSON(t, r, http.MethodPost, "/message/add", map[string]interface{}{
		"first_name": "Bob",
		"last_name":  "Smith",
		"email":      "bob@example.com",
		"phone":      "555-1234",
		"message":    "When does the next class start?",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	_, data := decodeEnvelope(t, w)
	var message models.MessageView
	assert.NoError(t, json.Unmarshal(data, &message))

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/message/update/%d", message.ID), map[string]interface{}{
		"phone": "555-9999",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	envelope, data := decodeEnvelope(t, w)
	assert.Equal(t, "Message Updated", envelope.Message)

	var updated models.MessageView
	assert.NoError(t, json.Unmarshal(data, &updated))
	assert.Equal(t, "555-9999", updated.Phone)
	assert.Equal(t, "Bob", updated.FirstName)
	assert.Equal(t, "bob@example.com", updated.Email)
	assert.Equal(t, "When does the next class start?", updated.Message)
}

func TestRegistrationWithUnknownEventFails(t *testing.T) {
	r, bunDB := setupRouter(t)
	defer bunDB.Close()

	w := doJSON(t, r, http.MethodPost, "/registration/add", map[string]interface{}{
		"first_name": "Jane",
		"event_id":   999,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope, _ := decodeEnvelope(t, w)
	assert.Equal(t, "Event Not Found", envelope.Message)
}

func TestListEmptyStoreReturnsEmptyArray(t *testing.T) {
	r, bunDB := setupRouter(t)
	defer bunDB.Close()

	for _, path := range []string{"/event/get", "/testimonial/get", "/message/get", "/registration/get"} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String(), "path %s", path)
	}
}

func TestGetDataExcludesArchivedEvents(t *testing.T) {
	r, bunDB := setupRouter(t)
	defer bunDB.Close()

	w := doJSON(t, r, http.MethodPost, "/event/add", map[string]interface{}{"month": "June", "start_date": 15, "year": 2024})
	assert.Equal(t, http.StatusOK, w.Code)
	_, data := decodeEnvelope(t, w)
	var visible models.EventView
	assert.NoError(t, json.Unmarshal(data, &visible))

	w = doJSON(t, r, http.MethodPost, "/event/add", map[string]interface{}{"month": "May", "start_date": 1, "year": 2023})
	assert.Equal(t, http.StatusOK, w.Code)
	_, data = decodeEnvelope(t, w)
	var hidden models.EventView
	assert.NoError(t, json.Unmarshal(data, &hidden))

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/event/update/%d", hidden.ID), map[string]interface{}{"archived": true})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/testimonial/add", map[string]interface{}{
		"name":   "Alice",
		"source": "Google",
		"text":   "Great program!",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/data", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var snapshot models.Snapshot
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Equal(t, 1, len(snapshot.Events))
	assert.Equal(t, visible.ID, snapshot.Events[0].ID)
	assert.Equal(t, 1, len(snapshot.Testimonials))
	assert.Equal(t, "Alice", snapshot.Testimonials[0].Name)
}
