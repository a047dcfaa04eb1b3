package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TypeStudent = "student"
	TypeTeacher = "teacher"
	TypeAdmin   = "admin"
	TypeParent  = "parent"
)

// ValidUserType reports whether t is one of the four account types.
func ValidUserType(t string) bool {
	return t == TypeStudent || t == TypeTeacher || t == TypeAdmin || t == TypeParent
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"userid" json:"userid"`
	Username  string             `bson:"username" json:"username"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Phone     string             `bson:"phone" json:"phone"`
	UserType  string             `bson:"usertype" json:"usertype"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name" json:"lastName"`
	IsActive  bool               `bson:"is_active" json:"isActive"`
	IsAdmin   bool               `bson:"is_admin" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
