package payments

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

// DeriveAccessStates reduces a user's payments to a per-course access map.
// An approved payment containing a course always marks it approved, even if
// a pending payment for the same course is seen later; pending only writes
// when the course has no entry yet. Courses absent from the map are
// purchasable.
func DeriveAccessStates(pays []models.Payment) map[string]string {
	states := make(map[string]string)
	for _, p := range pays {
		for _, line := range p.Courses {
			switch p.Status {
			case models.PaymentApproved:
				states[line.ID] = models.AccessApproved
			case models.PaymentPending:
				if _, ok := states[line.ID]; !ok {
					states[line.ID] = models.AccessPending
				}
			}
		}
	}
	return states
}

// GetAccessStates returns the caller's derived courseid -> status map.
func GetAccessStates(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.PaymentsCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		log.Println("GetAccessStates Find error:", err)
		// A failed read degrades to "nothing purchased".
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{})
		return
	}
	defer cursor.Close(ctx)

	var pays []models.Payment
	if err := cursor.All(ctx, &pays); err != nil {
		log.Println("GetAccessStates cursor.All error:", err)
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, DeriveAccessStates(pays))
}
