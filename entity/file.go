package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type File struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	FileUnID  string             `bson:"file_unid" json:"fileUnId"`
	UserID    string             `bson:"userid" json:"userid"`
	Filename  string             `bson:"filename" json:"filename"`
	Filepath  string             `bson:"filepath" json:"filepath"`
	Filesize  int64              `bson:"filesize" json:"filesize"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}
