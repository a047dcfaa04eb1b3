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

type Addresses struct {
	c *mongo.Collection
}

func NewAddresses(client *mongo.Client) *Addresses {
	c := client.Database(databaseName).Collection("addresses")
	_, err := c.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bsonx.Doc{{Key: "address_unid", Value: bsonx.Int32(1)}}, Options: options.Index().SetUnique(true)},
		{Keys: bsonx.Doc{{Key: "userid", Value: bsonx.Int32(1)}}},
	})
	if err != nil {
		log.Logger.Fatal("unable to create index", zap.Error(err))
	}

	return &Addresses{c: c}
}

func (s *Addresses) Insert(ctx context.Context, a *entity.Address) error {
	_, err := s.c.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.ErrAlreadyExists
		}

		log.Logger.Error("failed inserting address", zap.Error(err))
		return errs.ErrDatabase
	}

	return nil
}

func (s *Addresses) FindByUserID(ctx context.Context, userid string) ([]*entity.Address, error) {
	cursor, err := s.c.Find(ctx, bson.M{"userid": userid})
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		return nil, errs.ErrDatabase
	}
	defer cursor.Close(context.Background())

	var addresses []*entity.Address
	for cursor.Next(ctx) {
		a := &entity.Address{}
		if err := cursor.Decode(a); err != nil {
			log.Logger.Error("decode error", zap.Error(err))
			return nil, errs.ErrDatabase
		}
		addresses = append(addresses, a)
	}
	if err := cursor.Err(); err != nil {
		log.Logger.Error("cursor error", zap.Error(err))
		return nil, errs.ErrDatabase
	}

	return addresses, nil
}

func (s *Addresses) DeleteByUserID(ctx context.Context, userid string) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"userid": userid})
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		return errs.ErrDatabase
	}

	return nil
}
