package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Parent struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ParentUnID       string             `bson:"parent_unid" json:"parentUnId"`
	UserID           string             `bson:"userid" json:"userid"`
	FatherName       string             `bson:"father_name" json:"fatherName"`
	FatherAadhar     string             `bson:"father_aadhar" json:"fatherAadhar"`
	FatherOccupation string             `bson:"father_occupation" json:"fatherOccupation"`
	MotherName       string             `bson:"mother_name" json:"motherName"`
	MotherAadhar     string             `bson:"mother_aadhar" json:"motherAadhar"`
	MotherOccupation string             `bson:"mother_occupation" json:"motherOccupation"`
	CreatedAt        time.Time          `bson:"created_at" json:"createdAt"`
}
