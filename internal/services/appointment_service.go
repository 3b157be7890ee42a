package services

import (
	"context"
	"errors"
	"time"

	"github.com/doctorportal/api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const appointmentCollection = "appointments"

// ErrInvalidID is returned when a path id is not a valid object id.
var ErrInvalidID = errors.New("invalid id")

// AppointmentService owns reads and writes on the appointments collection.
type AppointmentService struct {
	store store.Store
}

func NewAppointmentService(s store.Store) *AppointmentService {
	return &AppointmentService{store: s}
}

// dateLayouts are the accepted booking-date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"January 2, 2006",
	"1/2/2006",
}

// NormalizeDate canonicalizes a booking date to ISO-8601 (YYYY-MM-DD).
// Strings matching none of the accepted layouts pass through unchanged,
// so the write path and the read path stay consistent with each other.
func NormalizeDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// ListByEmailAndDate returns the appointments matching both fields exactly.
func (s *AppointmentService) ListByEmailAndDate(ctx context.Context, email, date string) ([]bson.M, error) {
	filter := bson.M{"email": email, "date": NormalizeDate(date)}
	return s.store.Find(ctx, appointmentCollection, filter)
}

// Book inserts the appointment document as given, canonicalizing its date
// field so later equality lookups match.
func (s *AppointmentService) Book(ctx context.Context, appointment bson.M) (string, error) {
	if date, ok := appointment["date"].(string); ok {
		appointment["date"] = NormalizeDate(date)
	}
	return s.store.InsertOne(ctx, appointmentCollection, appointment)
}

// GetByID looks up a single appointment; store.ErrNotFound when absent.
func (s *AppointmentService) GetByID(ctx context.Context, id string) (bson.M, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.FindOne(ctx, appointmentCollection, bson.M{"_id": objID})
}

// AttachPayment merges a payment confirmation into an appointment.
func (s *AppointmentService) AttachPayment(ctx context.Context, id string, payment bson.M) (store.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.UpdateResult{}, ErrInvalidID
	}
	update := bson.M{"$set": bson.M{"payment": payment}}
	return s.store.UpdateOne(ctx, appointmentCollection, bson.M{"_id": objID}, update, false)
}
