package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing statuses. New listings always start as pending and become visible
// to customers only after an admin approves them.
const (
	ListingStatusPending  = "pending"
	ListingStatusApproved = "approved"
	ListingStatusRejected = "rejected"
)

// ServiceListing represents a bookable service offered by a provider.
type ServiceListing struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	Price       float64            `json:"price" bson:"price"`
	UserEmail   string             `json:"userEmail" bson:"userEmail"`
	Status      string             `json:"status" bson:"status"`
	SoldCount   int64              `json:"soldCount,omitempty" bson:"soldCount,omitempty"`
	CreatedAt   time.Time          `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// ListingFilter narrows approved-listing queries. Title and Location are
// matched case-insensitively as substrings; Category is an exact match.
type ListingFilter struct {
	Title    string
	Location string
	Category string
}

// ModerationRequest represents an admin approve/reject action on a listing
type ModerationRequest struct {
	Action string `json:"action"`
}
