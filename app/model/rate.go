package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RateCategory struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Image         string             `json:"image" bson:"image"`
	ImageUploadID string             `json:"image_upload_id,omitempty" bson:"imageUploadId,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updatedAt"`
}

// RateCategoryWithCount is the list row shape: the category plus how many
// places hang under it.
type RateCategoryWithCount struct {
	RateCategory
	PlaceCount int64 `json:"place_count"`
}

type RateCategoryRequest struct {
	Name          string `json:"name" validate:"required"`
	Image         string `json:"image"`
	ImageUploadID string `json:"image_upload_id"`
}

// Place is a child document of a rate category. Unlike attraction
// sub-resources these are real independent documents, one per place.
type Place struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CategoryID  string             `json:"category_id" bson:"categoryId"`
	Name        string             `json:"name" bson:"name"`
	Location    string             `json:"location" bson:"location"`
	Description string             `json:"description" bson:"description"`
	Cost        string             `json:"cost" bson:"cost"`
}

type PlaceRequest struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
	Cost        string `json:"cost" validate:"required"`
}
