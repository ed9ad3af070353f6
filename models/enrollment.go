package models

import "time"

// Enrollment statuses
const (
	EnrollmentPending  = "PENDING"
	EnrollmentApproved = "APPROVED"
	EnrollmentRejected = "REJECTED"
)

// PaymentInfo is the payment snapshot embedded on each enrollment at
// checkout time. It is never updated after creation.
type PaymentInfo struct {
	PhoneNumber   string  `bson:"phoneNumber" json:"phoneNumber"`
	TransactionID string  `bson:"transactionId" json:"transactionId"`
	Amount        float64 `bson:"amount" json:"amount"`
	TelegramID    string  `bson:"telegramId" json:"telegramId"`
	TelegramLink  string  `bson:"telegramLink,omitempty" json:"telegramLink,omitempty"`
	CustomerName  string  `bson:"customerName" json:"customerName"`
}

type Enrollment struct {
	EnrollmentID     string      `bson:"enrollmentid" json:"enrollmentid"`
	UserID           string      `bson:"userId" json:"userId"`
	CourseID         string      `bson:"courseId" json:"courseId"`
	Status           string      `bson:"status" json:"status"`
	PaymentInfo      PaymentInfo `bson:"paymentInfo" json:"paymentInfo"`
	RejectionReason  string      `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`
	CreatedAt        time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time   `bson:"updatedAt" json:"updatedAt"`
	TelegramJoinedAt *time.Time  `bson:"telegramJoinedAt" json:"telegramJoinedAt"`
	ApprovedBy       string      `bson:"approvedBy,omitempty" json:"approvedBy,omitempty"`
	RejectedBy       string      `bson:"rejectedBy,omitempty" json:"rejectedBy,omitempty"`

	// Course is joined in for the my-courses view, not stored.
	Course *Course `bson:"-" json:"course,omitempty"`
}
