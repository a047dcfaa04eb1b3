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

type Parents struct {
	c *mongo.Collection
}

func NewParents(client *mongo.Client) *Parents {
	c := client.Database(databaseName).Collection("parents")
	_, err := c.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bsonx.Doc{{Key: "parent_unid", Value: bsonx.Int32(1)}}, Options: options.Index().SetUnique(true)},
		{Keys: bsonx.Doc{{Key: "userid", Value: bsonx.Int32(1)}}},
	})
	if err != nil {
		log.Logger.Fatal("unable to create index", zap.Error(err))
	}

	return &Parents{c: c}
}

func (s *Parents) Insert(ctx context.Context, p *entity.Parent) error {
	_, err := s.c.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrAlreadyExists
		}

		log.Logger.Error("failed inserting parent record", zap.Error(err))
		return errs.ErrDatabase
	}

	return nil
}

func (s *Parents) FindByUserID(ctx context.Context, userid string) (*entity.Parent, error) {
	p := &entity.Parent{}
	err := s.c.FindOne(ctx, bson.M{"userid": userid}).Decode(p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}

		log.Logger.Error("database error", zap.Error(err))
		return nil, errs.ErrDatabase
	}

	return p, nil
}

func (s *Parents) DeleteByUserID(ctx context.Context, userid string) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"userid": userid})
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		return errs.ErrDatabase
	}

	return nil
}
