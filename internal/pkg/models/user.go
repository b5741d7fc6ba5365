package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserProfile represents a user document in the profile store. It is joined
// to a Credential only by the shared phone value; neither store enforces a
// foreign key.
type UserProfile struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	Phone        string             `json:"phone" bson:"phone"`
	Role         string             `json:"role" bson:"role"`
	CreatedAt    time.Time          `json:"created_at" bson:"createdAt"`
	LastLogIn    *time.Time         `json:"last_log_in,omitempty" bson:"last_log_in,omitempty"`
	Earning      float64            `json:"earning,omitempty" bson:"earning,omitempty"`
	Subscription *Subscription      `json:"subscription,omitempty" bson:"subscription,omitempty"`
}

// Subscription records the outcome of a completed checkout session. Upserts
// are keyed by SessionID so webhook re-deliveries are no-ops.
type Subscription struct {
	SessionID string    `json:"session_id" bson:"session_id"`
	Status    string    `json:"status" bson:"status"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Profile is the external representation of a user returned by the auth
// endpoints. ID is empty when the profile document could not be resolved and
// the response was built from the credential record alone.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// ToProfile converts a profile document to its external representation.
func (u *UserProfile) ToProfile() *Profile {
	id := ""
	if !u.ID.IsZero() {
		id = u.ID.Hex()
	}
	return &Profile{
		ID:       id,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     u.Role,
	}
}
