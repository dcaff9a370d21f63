package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// IsValidID reports whether id has the store's identifier format (24 hex characters).
func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}

// NewID returns a fresh identifier in the store's format.
func NewID() string {
	return primitive.NewObjectID().Hex()
}
