package dash

import (
	"context"
	"log"
	"net/http"
	"time"

	"vipcourses/db"
	"vipcourses/models"
	"vipcourses/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetOverview returns the admin dashboard stats in one shot.
func GetOverview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	users, err := db.UserCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("GetOverview users count error:", err)
		http.Error(w, "Failed to load overview", http.StatusInternalServerError)
		return
	}
	courses, _ := db.CoursesCollection.CountDocuments(ctx, bson.M{})
	enrollments, _ := db.EnrollmentsCollection.CountDocuments(ctx, bson.M{})
	pending, _ := db.PaymentsCollection.CountDocuments(ctx, bson.M{"status": models.PaymentPending})
	approved, _ := db.PaymentsCollection.CountDocuments(ctx, bson.M{"status": models.PaymentApproved})

	revenue := approvedRevenue(ctx)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"totalUsers":       users,
		"totalCourses":     courses,
		"totalEnrollments": enrollments,
		"pendingPayments":  pending,
		"approvedPayments": approved,
		"totalRevenue":     revenue,
	})
}

func approvedRevenue(ctx context.Context) float64 {
	pipeline := []bson.M{
		{"$match": bson.M{"status": models.PaymentApproved}},
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$finalAmount"}}},
	}
	cursor, err := db.PaymentsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		log.Println("approvedRevenue aggregate error:", err)
		return 0
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil || len(results) == 0 {
		return 0
	}
	return results[0].Total
}
