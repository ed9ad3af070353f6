package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"vipcourses/db"
	"vipcourses/models"
	"vipcourses/rdx"
	"vipcourses/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

// The cart is a temporary one-item payload per user, kept in Redis the way
// the storefront keeps it in local storage. It only bridges the gap between
// "Buy" and checkout submission.
const cartTTL = 24 * time.Hour

func cartKey(userID string) string {
	return "cart:" + userID
}

// SetCart replaces the user's cart with a single course.
func SetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Println("SetCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if item.CourseID == "" {
		http.Error(w, "courseid is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// Fill title/price from the course document so the client cannot set
	// its own price.
	var course models.Course
	if err := db.CoursesCollection.FindOne(ctx, bson.M{"courseid": item.CourseID}).Decode(&course); err != nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}
	if course.PublishStatus == "draft" && utils.GetRoleFromRequest(r) != "admin" {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	item.Title = course.Title
	item.Price = course.Price
	item.AddedAt = time.Now().Unix()

	if err := rdx.SetJSON(ctx, cartKey(userID), item, cartTTL); err != nil {
		log.Println("SetCart redis error:", err)
		http.Error(w, "Failed to save cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, item)
}

// GetCart returns the stored payload, or an empty object when there is none.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var item models.CartItem
	err := rdx.GetJSON(ctx, cartKey(userID), &item)
	if err == redis.Nil {
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{})
		return
	}
	if err != nil {
		log.Println("GetCart redis error:", err)
		http.Error(w, "Failed to load cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, item)
}

func ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	rdx.Del(ctx, cartKey(userID))
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// Load returns the stored cart payload for checkout, if any.
func Load(ctx context.Context, userID string) (*models.CartItem, error) {
	var item models.CartItem
	err := rdx.GetJSON(ctx, cartKey(userID), &item)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Clear drops the stored cart payload after a successful checkout.
func Clear(ctx context.Context, userID string) {
	rdx.Del(ctx, cartKey(userID))
}
