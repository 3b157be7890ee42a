package services

import (
	"context"

	"github.com/doctorportal/api/internal/models"
	"github.com/doctorportal/api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

const doctorCollection = "doctors"

// DoctorService owns reads and writes on the doctors collection.
type DoctorService struct {
	store store.Store
}

func NewDoctorService(s store.Store) *DoctorService {
	return &DoctorService{store: s}
}

// List returns every doctor with the image bytes inline.
func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	docs, err := s.store.Find(ctx, doctorCollection, bson.M{})
	if err != nil {
		return nil, err
	}

	doctors := make([]models.Doctor, 0, len(docs))
	for _, doc := range docs {
		var d models.Doctor
		if err := store.Decode(doc, &d); err != nil {
			return nil, err
		}
		doctors = append(doctors, d)
	}
	return doctors, nil
}

// Register stores a doctor profile with the uploaded image bytes.
func (s *DoctorService) Register(ctx context.Context, name, email string, image []byte) (string, error) {
	doctor := models.Doctor{Name: name, Email: email, Image: image}
	return s.store.InsertOne(ctx, doctorCollection, doctor)
}
