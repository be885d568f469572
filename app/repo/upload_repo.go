package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ChristianRende22/Web-proyecto/app/model"
)

type UploadRepository interface {
	Create(ctx context.Context, u *model.ImageUpload) error
	FindByID(ctx context.Context, id string) (*model.ImageUpload, error)
	Link(ctx context.Context, id, entityID, entityName, module string) error
}

type UploadRepo struct {
	mongoDB *mongo.Database
}

func NewUploadRepo(mongoDB *mongo.Database) *UploadRepo {
	return &UploadRepo{mongoDB: mongoDB}
}

func (r *UploadRepo) collection() *mongo.Collection {
	return r.mongoDB.Collection("imageUploads")
}

func (r *UploadRepo) Create(ctx context.Context, u *model.ImageUpload) error {
	u.CreatedAt = time.Now()

	res, err := r.collection().InsertOne(ctx, u)
	if err != nil {
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *UploadRepo) FindByID(ctx context.Context, id string) (*model.ImageUpload, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var u model.ImageUpload
	err = r.collection().FindOne(ctx, bson.M{"_id": objID}).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Link re-points an upload record at the entity that ended up using it.
func (r *UploadRepo) Link(ctx context.Context, id, entityID, entityName, module string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"entityId":   entityID,
		"entityName": entityName,
		"usedIn":     module + "/" + entityID,
		"linkedAt":   time.Now(),
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
