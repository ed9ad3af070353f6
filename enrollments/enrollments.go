package enrollments

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"vipcourses/db"
	"vipcourses/models"
	"vipcourses/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetMyEnrollments lists the caller's enrollments with each course joined
// in. Enrollments whose course has been deleted are skipped, matching the
// storefront's behavior.
func GetMyEnrollments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.EnrollmentsCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		log.Println("GetMyEnrollments Find error:", err)
		http.Error(w, "Could not retrieve enrollments", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var enrolls []models.Enrollment
	if err := cursor.All(ctx, &enrolls); err != nil {
		http.Error(w, "Error reading enrollments", http.StatusInternalServerError)
		return
	}

	out := make([]models.Enrollment, 0, len(enrolls))
	for _, e := range enrolls {
		var course models.Course
		if err := db.CoursesCollection.FindOne(ctx, bson.M{"courseid": e.CourseID}).Decode(&course); err != nil {
			log.Printf("GetMyEnrollments: course %s missing for enrollment %s", e.CourseID, e.EnrollmentID)
			continue
		}
		e.Course = &course
		out = append(out, e)
	}

	utils.RespondWithJSON(w, http.StatusOK, out)
}

// GetEnrollments lists enrollments for the admin view. ?status= filters by
// PENDING/APPROVED/REJECTED; omitted or ALL returns everything.
func GetEnrollments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" && status != "ALL" {
		filter["status"] = status
	}

	cursor, err := db.EnrollmentsCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Println("GetEnrollments Find error:", err)
		http.Error(w, "Could not retrieve enrollments", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var enrolls []models.Enrollment
	if err := cursor.All(ctx, &enrolls); err != nil {
		http.Error(w, "Error reading enrollments", http.StatusInternalServerError)
		return
	}
	if enrolls == nil {
		enrolls = []models.Enrollment{}
	}
	utils.RespondWithJSON(w, http.StatusOK, enrolls)
}

type updateStatusInput struct {
	EnrollmentID    string `json:"enrollmentId"`
	Status          string `json:"status"`
	AdminID         string `json:"adminId"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// UpdateEnrollmentStatus is the admin approve/reject operation. It keeps
// the {success, error} response envelope of the serverless endpoint the
// dashboard already speaks.
func UpdateEnrollmentStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input updateStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "error": "Invalid JSON payload"})
		return
	}

	if input.EnrollmentID == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "error": "enrollmentId is required"})
		return
	}
	if input.Status != models.EnrollmentApproved && input.Status != models.EnrollmentRejected {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "error": "status must be APPROVED or REJECTED"})
		return
	}

	adminID := input.AdminID
	if adminID == "" {
		adminID = utils.GetUserIDFromRequest(r)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	set := bson.M{"status": input.Status, "updatedAt": time.Now()}
	if input.Status == models.EnrollmentApproved {
		set["approvedBy"] = adminID
	} else {
		set["rejectedBy"] = adminID
		set["rejectionReason"] = input.RejectionReason
	}

	res, err := db.EnrollmentsCollection.UpdateOne(ctx,
		bson.M{"enrollmentid": input.EnrollmentID},
		bson.M{"$set": set},
	)
	if err != nil {
		log.Println("UpdateEnrollmentStatus error:", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "error": "Failed to update enrollment"})
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "error": "Enrollment not found"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

func DeleteEnrollment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	enrollmentID := ps.ByName("enrollmentid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.EnrollmentsCollection.DeleteOne(ctx, bson.M{"enrollmentid": enrollmentID})
	if err != nil {
		log.Println("DeleteEnrollment error:", err)
		http.Error(w, "Failed to delete enrollment", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Enrollment not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// MarkTelegramJoined stamps telegramJoinedAt on the caller's own approved
// enrollment, once.
func MarkTelegramJoined(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	enrollmentID := ps.ByName("enrollmentid")
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.EnrollmentsCollection.UpdateOne(ctx,
		bson.M{
			"enrollmentid":     enrollmentID,
			"userId":           userID,
			"status":           models.EnrollmentApproved,
			"telegramJoinedAt": nil,
		},
		bson.M{"$set": bson.M{"telegramJoinedAt": time.Now(), "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Println("MarkTelegramJoined error:", err)
		http.Error(w, "Failed to update enrollment", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Enrollment not found or already marked", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "joined"})
}
