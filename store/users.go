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

const databaseName = "schooldb"

type Users struct {
	c *mongo.Collection
}

func NewUsers(client *mongo.Client) *Users {
	c := client.Database(databaseName).Collection("users")
	_, err := c.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bsonx.Doc{{Key: "username", Value: bsonx.Int32(1)}}, Options: options.Index().SetUnique(true)},
		{Keys: bsonx.Doc{{Key: "email", Value: bsonx.Int32(1)}}, Options: options.Index().SetUnique(true)},
		{Keys: bsonx.Doc{{Key: "userid", Value: bsonx.Int32(1)}}, Options: options.Index().SetUnique(true).SetSparse(true)},
	})
	if err != nil {
		log.Logger.Fatal("unable to create index", zap.Error(err))
	}

	return &Users{c: c}
}

func (s *Users) Insert(ctx context.Context, u *entity.User) error {
	_, err := s.c.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Logger.Debug("duplicate user", zap.String("username", u.Username), zap.Error(err))
			return errs.ErrAlreadyExists
		}

		log.Logger.Error("failed inserting new user", zap.Error(err))
		return errs.ErrDatabase
	}

	return nil
}

func (s *Users) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		return nil, errs.ErrDatabase
	}
	defer cursor.Close(context.Background())

	var users []*entity.User
	for cursor.Next(ctx) {
		u := &entity.User{}
		if err := cursor.Decode(u); err != nil {
			log.Logger.Error("decode error", zap.Error(err))
			return nil, errs.ErrDatabase
		}
		users = append(users, u)
	}
	if err := cursor.Err(); err != nil {
		log.Logger.Error("cursor error", zap.Error(err))
		return nil, errs.ErrDatabase
	}

	return users, nil
}

func (s *Users) FindByUserID(ctx context.Context, userid string) (*entity.User, error) {
	return s.findOne(ctx, bson.M{"userid": userid})
}

func (s *Users) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *Users) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	return s.findOne(ctx, bson.M{"$or": []bson.M{{"username": username}, {"email": email}}})
}

func (s *Users) FindByLogin(ctx context.Context, username, usertype string) (*entity.User, error) {
	return s.findOne(ctx, bson.M{"username": username, "usertype": usertype})
}

func (s *Users) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	u := &entity.User{}
	err := s.c.FindOne(ctx, filter).Decode(u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}

		log.Logger.Error("database error", zap.Error(err))
		return nil, errs.ErrDatabase
	}

	return u, nil
}

func (s *Users) CountByType(ctx context.Context, usertype string) (int64, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"usertype": usertype})
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		return 0, errs.ErrDatabase
	}

	return n, nil
}

func (s *Users) DeleteByUserID(ctx context.Context, userid string) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"userid": userid})
	if err != nil {
		log.Logger.Error("database error", zap.Error(err))
		return errs.ErrDatabase
	}

	return nil
}
