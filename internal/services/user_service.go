package services

import (
	"context"
	"errors"

	"github.com/doctorportal/api/internal/models"
	"github.com/doctorportal/api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
)

const userCollection = "users"

var (
	// ErrMissingEmail is returned when an upsert body carries no email key.
	ErrMissingEmail = errors.New("email is required")
	// ErrNotAdmin is returned when the requester's stored role is not admin.
	ErrNotAdmin = errors.New("requester is not an admin")
)

// UserService owns reads and writes on the users collection.
type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService {
	return &UserService{store: s}
}

// Register inserts the user document as given.
func (s *UserService) Register(ctx context.Context, user bson.M) (string, error) {
	return s.store.InsertOne(ctx, userCollection, user)
}

// Upsert writes the profile keyed by its email, creating it when absent.
func (s *UserService) Upsert(ctx context.Context, user bson.M) (store.UpdateResult, error) {
	email, ok := user["email"].(string)
	if !ok || email == "" {
		return store.UpdateResult{}, ErrMissingEmail
	}
	return s.store.UpdateOne(ctx, userCollection, bson.M{"email": email}, bson.M{"$set": user}, true)
}

// IsAdmin reports whether the stored role for email is exactly "admin".
// An absent user is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	doc, err := s.store.FindOne(ctx, userCollection, bson.M{"email": email})
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var user models.User
	if err := store.Decode(doc, &user); err != nil {
		return false, err
	}
	return user.Role == models.RoleAdmin, nil
}

// Promote grants the admin role to the target user, provided the
// requester's own stored role is admin.
func (s *UserService) Promote(ctx context.Context, requesterEmail, targetEmail string) (store.UpdateResult, error) {
	admin, err := s.IsAdmin(ctx, requesterEmail)
	if err != nil {
		return store.UpdateResult{}, err
	}
	if !admin {
		return store.UpdateResult{}, ErrNotAdmin
	}

	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	return s.store.UpdateOne(ctx, userCollection, bson.M{"email": targetEmail}, update, false)
}
