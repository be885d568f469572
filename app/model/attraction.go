package model

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Attraction struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Place         string             `json:"place" bson:"place"`
	Category      string             `json:"category" bson:"category"`
	Description   string             `json:"description" bson:"description"`
	Image         string             `json:"image" bson:"image"`
	ImageUploadID string             `json:"image_upload_id,omitempty" bson:"imageUploadId,omitempty"`
	Activities    []string           `json:"activities" bson:"activities"`
	Distance      string             `json:"distance" bson:"distance"`
	Time          string             `json:"time" bson:"time"`
	Map           string             `json:"map" bson:"map"`
	CreatedAt     time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updatedAt"`
}

type AttractionRequest struct {
	Place         string   `json:"place" validate:"required"`
	Category      string   `json:"category" validate:"required,oneof=naturaleza playas cultura arqueologia aventura gastronomia"`
	Description   string   `json:"description" validate:"required"`
	Image         string   `json:"image"`
	ImageUploadID string   `json:"image_upload_id"`
	Activities    []string `json:"activities"`
	Distance      string   `json:"distance"`
	Time          string   `json:"time"`
	Map           string   `json:"map"`
}

// Sub-resource types stored as single array documents under an attraction.
const (
	SubResourceOnSite           = "attractionsOnSite"
	SubResourcePrivateTransport = "privateTransport"
	SubResourcePublicTransport  = "publicTransport"
)

// SubResourceInitID is the well-known child document id. Exactly one array
// document exists per (owner, type) pair once initialized.
const SubResourceInitID = "init"

var subResourceTypes = []string{
	SubResourceOnSite,
	SubResourcePrivateTransport,
	SubResourcePublicTransport,
}

var ErrUnknownSubResourceType = errors.New("unknown sub-resource type")

func SubResourceTypes() []string {
	return subResourceTypes
}

func ValidSubResourceType(t string) bool {
	for _, known := range subResourceTypes {
		if known == t {
			return true
		}
	}
	return false
}

// SubResource is the typed value object behind the single-document-array
// convention: an owner id, a type tag and an ordered string list. Writes
// replace the whole list; there is no element-level merge.
type SubResource struct {
	OwnerID string   `json:"owner_id" bson:"ownerId"`
	Type    string   `json:"type" bson:"type"`
	Items   []string `json:"items" bson:"items"`
}

type SubResourceRequest struct {
	Items []string `json:"items"`
}

// CleanItems trims every entry and drops empty or whitespace-only ones,
// preserving order.
func CleanItems(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			cleaned = append(cleaned, item)
		}
	}
	return cleaned
}

var mapEmbedSrcPattern = regexp.MustCompile(`https://www\.google\.com/maps/embed\?pb=[^\s"']*`)

// NormalizeMapEmbed turns admin map input into a canonical embed iframe.
// Accepted inputs: a full iframe snippet, or a Google Maps embed URL.
// Plain google.com/maps links cannot be embedded and yield an empty string.
func NormalizeMapEmbed(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if strings.Contains(input, "<iframe") && strings.Contains(input, "</iframe>") {
		return input
	}

	if src := mapEmbedSrcPattern.FindString(input); src != "" {
		return buildMapIframe(src)
	}

	if strings.HasPrefix(input, "https://www.google.com/maps/embed") {
		cleanURL := strings.FieldsFunc(input, func(r rune) bool {
			return r == ' ' || r == '"' || r == '\''
		})[0]
		return buildMapIframe(cleanURL)
	}

	return ""
}

func buildMapIframe(src string) string {
	return `<iframe src="` + src + `" width="100%" height="450" style="border:0;" allowfullscreen="" loading="lazy" referrerpolicy="no-referrer-when-downgrade"></iframe>`
}
