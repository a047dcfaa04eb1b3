package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AddressPresent   = "present"
	AddressPermanent = "permanent"
)

type Address struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AddressUnID string             `bson:"address_unid" json:"addressUnId"`
	UserID      string             `bson:"userid" json:"userid"`
	HouseNo     string             `bson:"house_no" json:"houseNo"`
	StreetName  string             `bson:"street_name" json:"streetName"`
	AreaName    string             `bson:"area_name" json:"areaName"`
	Landmark    string             `bson:"landmark" json:"landmark"`
	District    string             `bson:"district" json:"district"`
	State       string             `bson:"state" json:"state"`
	Pincode     string             `bson:"pincode" json:"pincode"`
	PhoneNumber string             `bson:"phone_number" json:"phoneNumber"`
	AddressType string             `bson:"address_type" json:"addressType"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
