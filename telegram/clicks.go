package telegram

import (
	"context"
	"log"
	"net/http"
	"time"

	"vipcourses/db"
	"vipcourses/models"
	"vipcourses/rdx"
	"vipcourses/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func clicksKey(userID string) string {
	return "tgclicks:" + userID
}

// GetJoinLink returns the deep link for an approved course. The caller must
// hold an APPROVED enrollment for it.
func GetJoinLink(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	courseID := ps.ByName("courseid")
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	count, err := db.EnrollmentsCollection.CountDocuments(ctx, bson.M{
		"userId":   userID,
		"courseId": courseID,
		"status":   models.EnrollmentApproved,
	})
	if err != nil || count == 0 {
		http.Error(w, "No approved enrollment for this course", http.StatusForbidden)
		return
	}

	var course models.Course
	if err := db.CoursesCollection.FindOne(ctx, bson.M{"courseid": courseID}).Decode(&course); err != nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}
	if course.TelegramLink == "" {
		http.Error(w, "Telegram link not available yet", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"link": AppLink(course.TelegramLink),
	})
}

// MarkClicked records that the user opened the course's Telegram link. The
// flag only gates the join button client-side; setting it twice is harmless.
func MarkClicked(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	courseID := ps.ByName("courseid")
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := rdx.Conn.HSet(ctx, clicksKey(userID), courseID, "1").Err(); err != nil {
		log.Println("MarkClicked redis error:", err)
		http.Error(w, "Failed to save click", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "clicked"})
}

// GetClicked returns the caller's courseid -> clicked map.
func GetClicked(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	entries, err := rdx.Conn.HGetAll(ctx, clicksKey(userID)).Result()
	if err != nil {
		log.Println("GetClicked redis error:", err)
		// A failed read degrades to "nothing clicked".
		utils.RespondWithJSON(w, http.StatusOK, map[string]bool{})
		return
	}

	clicked := make(map[string]bool, len(entries))
	for courseID := range entries {
		clicked[courseID] = true
	}
	utils.RespondWithJSON(w, http.StatusOK, clicked)
}
