package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is a registered doctor profile. Image holds the decoded bytes of
// the uploaded file; JSON encodes them as base64.
type Doctor struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
	Image []byte             `bson:"image" json:"image"`
}
