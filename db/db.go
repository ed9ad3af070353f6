package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection          *mongo.Collection
	CoursesCollection       *mongo.Collection
	CategoriesCollection    *mongo.Collection
	SubcategoriesCollection *mongo.Collection
	PaymentsCollection      *mongo.Collection
	EnrollmentsCollection   *mongo.Collection
	HeaderConfigsCollection *mongo.Collection
	FooterConfigsCollection *mongo.Collection
	SitePagesCollection     *mongo.Collection
	Client                  *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	Client, err = mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("coursedb")
	UserCollection = database.Collection("users")
	CoursesCollection = database.Collection("courses")
	CategoriesCollection = database.Collection("categories")
	SubcategoriesCollection = database.Collection("subcategories")
	PaymentsCollection = database.Collection("payments")
	EnrollmentsCollection = database.Collection("enrollments")
	HeaderConfigsCollection = database.Collection("headerConfigs")
	FooterConfigsCollection = database.Collection("footerConfigs")
	SitePagesCollection = database.Collection("sitePages")
}
