package models

import "time"

// Payment statuses
const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
	PaymentRejected = "rejected"
)

// Derived per-course access states
const (
	AccessNone     = "none"
	AccessPending  = "pending"
	AccessApproved = "approved"
)

type PaymentCourse struct {
	ID    string  `bson:"id" json:"id"`
	Title string  `bson:"title" json:"title"`
	Price float64 `bson:"price" json:"price"`
}

type Payment struct {
	PaymentID     string          `bson:"paymentid" json:"paymentid"`
	UserID        string          `bson:"userId" json:"userId"`
	UserName      string          `bson:"userName" json:"userName"`
	UserEmail     string          `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	PhoneNumber   string          `bson:"phoneNumber" json:"phoneNumber"`
	TransactionID string          `bson:"transactionId" json:"transactionId"`
	TelegramID    string          `bson:"telegramId" json:"telegramId"`
	TelegramLink  string          `bson:"telegramLink,omitempty" json:"telegramLink,omitempty"`
	Courses       []PaymentCourse `bson:"courses" json:"courses"`
	Subtotal      float64         `bson:"subtotal" json:"subtotal"`
	Discount      float64         `bson:"discount" json:"discount"`
	FinalAmount   float64         `bson:"finalAmount" json:"finalAmount"`
	Status        string          `bson:"status" json:"status"`
	SubmittedAt   time.Time       `bson:"submittedAt" json:"submittedAt"`
	ReviewedAt    *time.Time      `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	ReviewedBy    string          `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
}
