package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ChristianRende22/Web-proyecto/app/model"
)

type ContactRepository interface {
	Create(ctx context.Context, c *model.ContactSubmission) error
	FindAll(ctx context.Context) ([]model.ContactSubmission, error)
	FindByID(ctx context.Context, id string) (*model.ContactSubmission, error)
}

type ContactRepo struct {
	mongoDB *mongo.Database
}

func NewContactRepo(mongoDB *mongo.Database) *ContactRepo {
	return &ContactRepo{mongoDB: mongoDB}
}

func (r *ContactRepo) collection() *mongo.Collection {
	return r.mongoDB.Collection("contactSubmissions")
}

func (r *ContactRepo) Create(ctx context.Context, c *model.ContactSubmission) error {
	c.CreatedAt = time.Now()

	res, err := r.collection().InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *ContactRepo) FindAll(ctx context.Context) ([]model.ContactSubmission, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contacts []model.ContactSubmission
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactRepo) FindByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var c model.ContactSubmission
	err = r.collection().FindOne(ctx, bson.M{"_id": objID}).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
