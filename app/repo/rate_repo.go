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

type RateRepository interface {
	CreateCategory(ctx context.Context, c *model.RateCategory) error
	FindAllCategories(ctx context.Context) ([]model.RateCategoryWithCount, error)
	FindCategoryByID(ctx context.Context, id string) (*model.RateCategory, error)
	UpdateCategory(ctx context.Context, id string, c *model.RateCategory) error
	DeleteCategory(ctx context.Context, id string) error

	CreatePlace(ctx context.Context, p *model.Place) error
	FindPlacesByCategory(ctx context.Context, categoryID string) ([]model.Place, error)
	FindPlaceByID(ctx context.Context, id string) (*model.Place, error)
	UpdatePlace(ctx context.Context, id string, p *model.Place) error
	DeletePlace(ctx context.Context, id string) error
}

type RateRepo struct {
	mongoDB *mongo.Database
}

func NewRateRepo(mongoDB *mongo.Database) *RateRepo {
	return &RateRepo{mongoDB: mongoDB}
}

func (r *RateRepo) categories() *mongo.Collection {
	return r.mongoDB.Collection("rateCategories")
}

func (r *RateRepo) places() *mongo.Collection {
	return r.mongoDB.Collection("places")
}

func (r *RateRepo) CreateCategory(ctx context.Context, c *model.RateCategory) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := r.categories().InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindAllCategories lists categories by name and attaches each one's place
// count for the admin table.
func (r *RateRepo) FindAllCategories(ctx context.Context) ([]model.RateCategoryWithCount, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.categories().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []model.RateCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	result := make([]model.RateCategoryWithCount, 0, len(categories))
	for _, c := range categories {
		count, err := r.places().CountDocuments(ctx, bson.M{"categoryId": c.ID.Hex()})
		if err != nil {
			return nil, err
		}
		result = append(result, model.RateCategoryWithCount{RateCategory: c, PlaceCount: count})
	}

	return result, nil
}

func (r *RateRepo) FindCategoryByID(ctx context.Context, id string) (*model.RateCategory, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var c model.RateCategory
	err = r.categories().FindOne(ctx, bson.M{"_id": objID}).Decode(&c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *RateRepo) UpdateCategory(ctx context.Context, id string, c *model.RateCategory) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":          c.Name,
		"image":         c.Image,
		"imageUploadId": c.ImageUploadID,
		"updatedAt":     time.Now(),
	}}

	res, err := r.categories().UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteCategory removes the category and every place under it.
func (r *RateRepo) DeleteCategory(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.categories().DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}

	_, err = r.places().DeleteMany(ctx, bson.M{"categoryId": id})
	return err
}

func (r *RateRepo) CreatePlace(ctx context.Context, p *model.Place) error {
	res, err := r.places().InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *RateRepo) FindPlacesByCategory(ctx context.Context, categoryID string) ([]model.Place, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.places().Find(ctx, bson.M{"categoryId": categoryID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var places []model.Place
	if err := cursor.All(ctx, &places); err != nil {
		return nil, err
	}
	return places, nil
}

func (r *RateRepo) FindPlaceByID(ctx context.Context, id string) (*model.Place, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var p model.Place
	err = r.places().FindOne(ctx, bson.M{"_id": objID}).Decode(&p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *RateRepo) UpdatePlace(ctx context.Context, id string, p *model.Place) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"location":    p.Location,
		"description": p.Description,
		"cost":        p.Cost,
	}}

	res, err := r.places().UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *RateRepo) DeletePlace(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	res, err := r.places().DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
