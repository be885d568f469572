package repo

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ChristianRende22/Web-proyecto/app/model"
)

// SubResourceRepository implements the single-document-array convention:
// each (owner, type) pair owns at most one document, keyed by the fixed
// child id "init", whose items field holds the whole list. Writes are full
// overwrites; last write wins.
type SubResourceRepository interface {
	Read(ctx context.Context, ownerID, subType string) ([]string, error)
	Write(ctx context.Context, ownerID, subType string, items []string, existingChildID string) error
	FindChildID(ctx context.Context, ownerID, subType string) (string, error)
	InitEmpty(ctx context.Context, ownerID string) error
	DeleteForOwner(ctx context.Context, ownerID string) error
}

type SubResourceRepo struct {
	mongoDB *mongo.Database
}

func NewSubResourceRepo(mongoDB *mongo.Database) *SubResourceRepo {
	return &SubResourceRepo{mongoDB: mongoDB}
}

type subResourceDoc struct {
	OwnerID string   `bson:"ownerId"`
	Type    string   `bson:"type"`
	ChildID string   `bson:"childId"`
	Items   []string `bson:"items"`
}

func (r *SubResourceRepo) collection() *mongo.Collection {
	return r.mongoDB.Collection("subresources")
}

// Read fetches every document for the (owner, type) pair — in practice zero
// or one exists — and concatenates their items. Owners created before the
// convention simply have no document, so absence and read failure both
// degrade to an empty list rather than an error.
func (r *SubResourceRepo) Read(ctx context.Context, ownerID, subType string) ([]string, error) {
	cursor, err := r.collection().Find(ctx, bson.M{"ownerId": ownerID, "type": subType})
	if err != nil {
		log.Printf("Failed to read sub-resource %s/%s: %v", ownerID, subType, err)
		return []string{}, nil
	}
	defer cursor.Close(ctx)

	items := []string{}
	for cursor.Next(ctx) {
		var doc subResourceDoc
		if err := cursor.Decode(&doc); err != nil {
			log.Printf("Failed to decode sub-resource %s/%s: %v", ownerID, subType, err)
			continue
		}
		items = append(items, doc.Items...)
	}

	return items, nil
}

// Write replaces the entire items array of the child document. When no
// child exists yet the document is created at the fixed id "init". Items
// are stored exactly as given; callers clean them first.
func (r *SubResourceRepo) Write(ctx context.Context, ownerID, subType string, items []string, existingChildID string) error {
	childID := existingChildID
	if childID == "" {
		childID = model.SubResourceInitID
	}
	if items == nil {
		items = []string{}
	}

	filter := bson.M{"ownerId": ownerID, "type": subType, "childId": childID}
	update := bson.M{"$set": bson.M{"items": items}}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection().UpdateOne(ctx, filter, update, opts)
	return err
}

// FindChildID returns the id of the existing array document, or empty when
// the owner predates the convention.
func (r *SubResourceRepo) FindChildID(ctx context.Context, ownerID, subType string) (string, error) {
	var doc subResourceDoc
	err := r.collection().FindOne(ctx, bson.M{"ownerId": ownerID, "type": subType}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return doc.ChildID, nil
}

// InitEmpty eagerly creates the three empty array documents for a freshly
// created owner, so later reads never special-case a missing sub-collection
// for new entities.
func (r *SubResourceRepo) InitEmpty(ctx context.Context, ownerID string) error {
	for _, subType := range model.SubResourceTypes() {
		if err := r.Write(ctx, ownerID, subType, []string{}, model.SubResourceInitID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SubResourceRepo) DeleteForOwner(ctx context.Context, ownerID string) error {
	_, err := r.collection().DeleteMany(ctx, bson.M{"ownerId": ownerID})
	return err
}
