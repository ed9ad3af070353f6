package models

import (
	"time"
)

type User struct {
	UserID        string    `bson:"userid" json:"userid"`
	Username      string    `bson:"username" json:"username"`
	Email         string    `bson:"email" json:"email"`
	Name          string    `bson:"name,omitempty" json:"name,omitempty"`
	Password      string    `bson:"password" json:"-"`
	Role          string    `bson:"role" json:"role"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	LastLogin     time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
	RefreshToken  string    `bson:"refresh_token,omitempty" json:"-"`
	RefreshExpiry time.Time `bson:"refresh_expiry,omitempty" json:"-"`
}

type Course struct {
	CourseID      string    `bson:"courseid" json:"courseid"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	Price         float64   `bson:"price" json:"price"`
	Category      string    `bson:"category,omitempty" json:"category,omitempty"`
	Subcategory   string    `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	ThumbnailURL  string    `bson:"thumbnailURL,omitempty" json:"thumbnailURL,omitempty"`
	PublishStatus string    `bson:"publishStatus" json:"publishStatus"`
	TelegramLink  string    `bson:"telegramLink,omitempty" json:"telegramLink,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
	CreatedBy     string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
}

type Category struct {
	CategoryID string    `bson:"categoryid" json:"categoryid"`
	Name       string    `bson:"name" json:"name"`
	Order      int       `bson:"order" json:"order"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

type Subcategory struct {
	SubcategoryID string    `bson:"subcategoryid" json:"subcategoryid"`
	CategoryID    string    `bson:"categoryid" json:"categoryid"`
	Name          string    `bson:"name" json:"name"`
	Order         int       `bson:"order" json:"order"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// SitePage is static page metadata used by the builder's link picker.
type SitePage struct {
	PageID    string    `bson:"_id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Slug      string    `bson:"slug" json:"slug"`
	Type      string    `bson:"type" json:"type"`
	IsVisible bool      `bson:"isVisible" json:"isVisible"`
	Order     int       `bson:"order" json:"order"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

type CartItem struct {
	CourseID string  `json:"courseid"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	AddedAt  int64   `json:"addedAt,omitempty"`
}
