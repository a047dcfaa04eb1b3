package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/bsonx"
	"go.uber.org/zap"
	"schoolapp-backend/entity"
	"schoolapp-backend/errs"
	"schoolapp-backend/log"
)

type Files struct {
	c *mongo.Collection
}

func NewFiles(client *mongo.Client) *Files {
	c := client.Database(databaseName).Collection("files")
	_, err := c.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bsonx.Doc{{Key: "file_unid", Value: bsonx.Int32(1)}}, Options: options.Index().SetUnique(true)},
		{Keys: bsonx.Doc{{Key: "userid", Value: bsonx.Int32(1)}}},
	})
	if err != nil {
		log.Logger.Fatal("unable to create index", zap.Error(err))
	}

	return &Files{c: c}
}

func (s *Files) Insert(ctx context.Context, f *entity.File) error {
	_, err := s.c.InsertOne(ctx, f)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrAlreadyExists
		}

		log.Logger.Error("failed inserting file record", zap.Error(err))
		return errs.ErrDatabase
	}

	return nil
}

func (s *Files) FindByUserID(ctx context.Context, userid string) ([]*entity.File, error) {
	cursor, err := s.c.Find(ctx, bson.M{"userid": userid})
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		return nil, errs.ErrDatabase
	}
	defer cursor.Close(context.Background())

	var files []*entity.File
	for cursor.Next(ctx) {
		f := &entity.File{}
		if err := cursor.Decode(f); err != nil {
			log.Logger.Error("decode error", zap.Error(err))
			return nil, errs.ErrDatabase
		}
		files = append(files, f)
	}
	if err := cursor.Err(); err != nil {
		log.Logger.Error("cursor error", zap.Error(err))
		return nil, errs.ErrDatabase
	}

	return files, nil
}

func (s *Files) DeleteByUserID(ctx context.Context, userid string) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"userid": userid})
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		return errs.ErrDatabase
	}

	return nil
}
