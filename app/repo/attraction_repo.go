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

type AttractionRepository interface {
	Create(ctx context.Context, a *model.Attraction) error
	FindAll(ctx context.Context) ([]model.Attraction, error)
	FindByID(ctx context.Context, id string) (*model.Attraction, error)
	Update(ctx context.Context, id string, a *model.Attraction) error
	Delete(ctx context.Context, id string) error
}

type AttractionRepo struct {
	mongoDB *mongo.Database
}

func NewAttractionRepo(mongoDB *mongo.Database) *AttractionRepo {
	return &AttractionRepo{mongoDB: mongoDB}
}

func (r *AttractionRepo) collection() *mongo.Collection {
	return r.mongoDB.Collection("attractions")
}

func (r *AttractionRepo) Create(ctx context.Context, a *model.Attraction) error {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	res, err := r.collection().InsertOne(ctx, a)
	if err != nil {
		return err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *AttractionRepo) FindAll(ctx context.Context) ([]model.Attraction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "place", Value: 1}})
	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attractions []model.Attraction
	if err := cursor.All(ctx, &attractions); err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *AttractionRepo) FindByID(ctx context.Context, id string) (*model.Attraction, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var a model.Attraction
	err = r.collection().FindOne(ctx, bson.M{"_id": objID}).Decode(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttractionRepo) Update(ctx context.Context, id string, a *model.Attraction) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"place":         a.Place,
		"category":      a.Category,
		"description":   a.Description,
		"image":         a.Image,
		"imageUploadId": a.ImageUploadID,
		"activities":    a.Activities,
		"distance":      a.Distance,
		"time":          a.Time,
		"map":           a.Map,
		"updatedAt":     time.Now(),
	}}

	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *AttractionRepo) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
