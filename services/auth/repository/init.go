package repository

import (
	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthRepo implements auth.CredentialRepo against the embedded credential
// store. A single handle is shared across all requests; the store serializes
// writes internally.
type AuthRepo struct {
	db *sqlx.DB
}

// NewAuthRepo creates a new credential store repository
func NewAuthRepo(db *sqlx.DB) *AuthRepo {
	return &AuthRepo{db: db}
}

// ProfileRepo implements auth.ProfileRepo against the users collection of
// the document store.
type ProfileRepo struct {
	users *mongo.Collection
}

// NewProfileRepo creates a new profile store repository
func NewProfileRepo(users *mongo.Collection) *ProfileRepo {
	return &ProfileRepo{users: users}
}
