package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactSubmission struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Phone       string             `json:"phone" bson:"phone"`
	Destination string             `json:"destination" bson:"destination"`
	TravelDate  string             `json:"travel_date" bson:"travelDate"`
	People      string             `json:"people" bson:"people"`
	Budget      string             `json:"budget" bson:"budget"`
	Message     string             `json:"message" bson:"message"`
	Newsletter  bool               `json:"newsletter" bson:"newsletter"`
	CreatedAt   time.Time          `json:"created_at" bson:"createdAt"`
}

type ContactRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Destination string `json:"destination"`
	TravelDate  string `json:"travel_date"`
	People      string `json:"people"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
	Newsletter  bool   `json:"newsletter"`
}
