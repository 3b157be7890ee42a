package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the only role value this service acts on.
const RoleAdmin = "admin"

// User carries just the fields the service reads back; registration and
// profile updates flow through as raw documents.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}
