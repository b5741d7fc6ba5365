package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment represents a completed booking payment recorded after the gateway
// confirms the charge.
type Payment struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ServiceID     string             `json:"serviceId" bson:"serviceId"`
	ServiceTitle  string             `json:"serviceTitle,omitempty" bson:"serviceTitle,omitempty"`
	BuyerEmail    string             `json:"buyerEmail" bson:"buyerEmail"`
	ProviderEmail string             `json:"providerEmail" bson:"providerEmail"`
	ProviderPhone string             `json:"providerPhone,omitempty" bson:"providerPhone,omitempty"`
	Price         float64            `json:"price" bson:"price"`
	TransactionID string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Date          time.Time          `json:"date" bson:"date"`
}

// PaymentIntentRequest represents a request to create a payment intent
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// PaymentIntentResponse carries the gateway client secret back to the caller
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// EarningsSummary aggregates a provider's payment history
type EarningsSummary struct {
	TotalEarnings float64    `json:"totalEarnings"`
	TotalSales    int        `json:"totalSales"`
	LastPayment   *time.Time `json:"lastPayment"`
}

// ProviderEarnings is the provider dashboard response
type ProviderEarnings struct {
	Summary EarningsSummary `json:"summary"`
	History []Payment       `json:"history"`
}

// CheckoutEvent is the gateway-neutral view of a completed checkout session
// extracted from a verified webhook delivery.
type CheckoutEvent struct {
	SessionID     string `json:"session_id"`
	CustomerEmail string `json:"customer_email"`
	Status        string `json:"status"`
}

// PaymentCompletedEvent is published on NATS after a payment is recorded
type PaymentCompletedEvent struct {
	PaymentID     string    `json:"payment_id"`
	ServiceID     string    `json:"service_id"`
	BuyerEmail    string    `json:"buyer_email"`
	ProviderEmail string    `json:"provider_email"`
	ProviderPhone string    `json:"provider_phone,omitempty"`
	Price         float64   `json:"price"`
	Date          time.Time `json:"date"`
}
