package model

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxUploadSize is the largest accepted image, checked before any network
// call to the image host.
const MaxUploadSize = 10 * 1024 * 1024

var (
	ErrNoFile       = errors.New("no file selected")
	ErrNotAnImage   = errors.New("file must be an image (JPG, PNG, GIF, etc.)")
	ErrFileTooLarge = errors.New("image must not exceed 10MB")
)

// ValidateUpload rejects bad uploads locally so invalid files never reach
// the image host.
func ValidateUpload(filename, contentType string, size int64) error {
	if filename == "" || size == 0 {
		return ErrNoFile
	}
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}
	if size > MaxUploadSize {
		return ErrFileTooLarge
	}
	return nil
}

// ImageUpload is the stored record of one Cloudinary upload, linkable to the
// entity whose form triggered it.
type ImageUpload struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	URL              string             `json:"url" bson:"url"`
	PublicID         string             `json:"public_id" bson:"publicId"`
	Format           string             `json:"format" bson:"format"`
	Width            int                `json:"width" bson:"width"`
	Height           int                `json:"height" bson:"height"`
	Bytes            int64              `json:"bytes" bson:"bytes"`
	OriginalFilename string             `json:"original_filename" bson:"originalFilename"`
	Module           string             `json:"module" bson:"module"`
	EntityID         string             `json:"entity_id,omitempty" bson:"entityId,omitempty"`
	EntityName       string             `json:"entity_name" bson:"entityName"`
	UsedIn           string             `json:"used_in,omitempty" bson:"usedIn,omitempty"`
	AssetID          string             `json:"asset_id" bson:"assetId"`
	Version          int64              `json:"version" bson:"version"`
	ResourceType     string             `json:"resource_type" bson:"resourceType"`
	CreatedAt        time.Time          `json:"created_at" bson:"createdAt"`
	LinkedAt         time.Time          `json:"linked_at,omitempty" bson:"linkedAt,omitempty"`
}

type UploadResponse struct {
	URL      string `json:"url"`
	UploadID string `json:"upload_id"`
}

type LinkUploadRequest struct {
	EntityID   string `json:"entity_id" validate:"required"`
	EntityName string `json:"entity_name" validate:"required"`
	Module     string `json:"module" validate:"required"`
}
