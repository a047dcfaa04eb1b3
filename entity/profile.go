package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is the one-to-one personal record of a user, threaded to it by the
// generated userid rather than the mongo _id.
type Profile struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ProfileUnID   string             `bson:"profile_unid" json:"profileUnId"`
	UserID        string             `bson:"userid" json:"userid"`
	FirstName     string             `bson:"first_name" json:"firstName"`
	LastName      string             `bson:"last_name" json:"lastName"`
	DateOfBirth   string             `bson:"date_of_birth" json:"dateOfBirth"`
	AadharNumber  string             `bson:"aadhar_number" json:"aadharNumber"`
	ContactNumber string             `bson:"contact_number" json:"contactNumber"`
	Grade         string             `bson:"grade" json:"grade"`
	Class         string             `bson:"class" json:"class"`
	ClassTeacher  string             `bson:"class_teacher" json:"classTeacher"`
	ProfilePhoto  string             `bson:"profile_photo" json:"profilePhoto"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}
