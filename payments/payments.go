package payments

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"vipcourses/cart"
	"vipcourses/dash"
	"vipcourses/db"
	"vipcourses/models"
	"vipcourses/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// purchasable keeps draft courses out of non-admin checkouts, matching the
// cart and listing gates.
func purchasable(course models.Course, role string) bool {
	return course.PublishStatus != "draft" || role == "admin"
}

type submitInput struct {
	CustomerName  string                 `json:"customerName"`
	PhoneNumber   string                 `json:"phoneNumber"`
	TransactionID string                 `json:"transactionId"`
	TelegramID    string                 `json:"telegramId"`
	TelegramLink  string                 `json:"telegramLink"`
	Courses       []models.PaymentCourse `json:"courses"`
}

// SubmitPayment records a manual payment submission and creates a PENDING
// enrollment per course. Course prices are resolved from the course
// documents, never trusted from the client.
func SubmitPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input submitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.TransactionID = strings.TrimSpace(input.TransactionID)
	input.TelegramID = strings.TrimSpace(input.TelegramID)
	input.TelegramLink = strings.TrimSpace(input.TelegramLink)

	switch {
	case input.CustomerName == "":
		http.Error(w, "customerName is required", http.StatusBadRequest)
		return
	case input.PhoneNumber == "":
		http.Error(w, "phoneNumber is required", http.StatusBadRequest)
		return
	case !utils.IsValidPhone(input.PhoneNumber):
		http.Error(w, "phoneNumber must be a valid phone number", http.StatusBadRequest)
		return
	case input.TransactionID == "":
		http.Error(w, "transactionId is required", http.StatusBadRequest)
		return
	case input.TelegramID == "":
		http.Error(w, "telegramId is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// Fall back to the stored cart payload when no course list was sent.
	if len(input.Courses) == 0 {
		item, err := cart.Load(ctx, userID)
		if err != nil {
			log.Println("SubmitPayment cart load error:", err)
		}
		if item == nil {
			http.Error(w, "No courses to purchase", http.StatusBadRequest)
			return
		}
		input.Courses = []models.PaymentCourse{{ID: item.CourseID, Title: item.Title, Price: item.Price}}
	}

	role := utils.GetRoleFromRequest(r)

	var lines []models.PaymentCourse
	var subtotal float64
	for _, pc := range input.Courses {
		var course models.Course
		if err := db.CoursesCollection.FindOne(ctx, bson.M{"courseid": pc.ID}).Decode(&course); err != nil {
			http.Error(w, "Course not found: "+pc.ID, http.StatusBadRequest)
			return
		}
		if !purchasable(course, role) {
			http.Error(w, "Course not available: "+pc.ID, http.StatusBadRequest)
			return
		}
		lines = append(lines, models.PaymentCourse{ID: course.CourseID, Title: course.Title, Price: course.Price})
		subtotal += course.Price
	}
	subtotal = math.Round(subtotal*100) / 100

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		log.Println("SubmitPayment user lookup error:", err)
	}

	payment := models.Payment{
		PaymentID:     utils.GetUUID(),
		UserID:        userID,
		UserName:      input.CustomerName,
		UserEmail:     user.Email,
		PhoneNumber:   input.PhoneNumber,
		TransactionID: input.TransactionID,
		TelegramID:    input.TelegramID,
		TelegramLink:  input.TelegramLink,
		Courses:       lines,
		Subtotal:      subtotal,
		Discount:      0,
		FinalAmount:   subtotal,
		Status:        models.PaymentPending,
		SubmittedAt:   time.Now(),
	}

	if _, err := db.PaymentsCollection.InsertOne(ctx, payment); err != nil {
		log.Println("SubmitPayment InsertOne error:", err)
		http.Error(w, "Failed to submit payment information", http.StatusInternalServerError)
		return
	}

	for _, line := range lines {
		enrollment := models.Enrollment{
			EnrollmentID: utils.GetUUID(),
			UserID:       userID,
			CourseID:     line.ID,
			Status:       models.EnrollmentPending,
			PaymentInfo: models.PaymentInfo{
				PhoneNumber:   input.PhoneNumber,
				TransactionID: input.TransactionID,
				Amount:        line.Price,
				TelegramID:    input.TelegramID,
				TelegramLink:  input.TelegramLink,
				CustomerName:  input.CustomerName,
			},
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
			TelegramJoinedAt: nil,
		}
		if _, err := db.EnrollmentsCollection.InsertOne(ctx, enrollment); err != nil {
			// The payment stays; the admin sees the mismatch in review.
			log.Printf("SubmitPayment: enrollment insert failed for course %s, err=%v", line.ID, err)
		}
	}

	cart.Clear(ctx, userID)
	dash.NotifyPendingChanged()

	utils.RespondWithJSON(w, http.StatusCreated, payment)
}

// GetMyPayments lists the caller's payments, newest first.
func GetMyPayments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.PaymentsCollection.Find(ctx, bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"submittedAt": -1}))
	if err != nil {
		log.Println("GetMyPayments Find error:", err)
		http.Error(w, "Could not retrieve payments", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var pays []models.Payment
	if err := cursor.All(ctx, &pays); err != nil {
		http.Error(w, "Error reading payments", http.StatusInternalServerError)
		return
	}
	if pays == nil {
		pays = []models.Payment{}
	}
	utils.RespondWithJSON(w, http.StatusOK, pays)
}

// GetPayments lists payments for the admin view, optional ?status= filter.
func GetPayments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" && status != "all" {
		filter["status"] = status
	}

	cursor, err := db.PaymentsCollection.Find(ctx, filter,
		options.Find().SetSort(bson.M{"submittedAt": -1}))
	if err != nil {
		log.Println("GetPayments Find error:", err)
		http.Error(w, "Could not retrieve payments", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var pays []models.Payment
	if err := cursor.All(ctx, &pays); err != nil {
		http.Error(w, "Error reading payments", http.StatusInternalServerError)
		return
	}
	if pays == nil {
		pays = []models.Payment{}
	}
	utils.RespondWithJSON(w, http.StatusOK, pays)
}

// ReviewPayment approves or rejects a pending payment and syncs the
// enrollments created from it.
func ReviewPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	paymentID := ps.ByName("paymentid")
	adminID := utils.GetUserIDFromRequest(r)

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if input.Status != models.PaymentApproved && input.Status != models.PaymentRejected {
		http.Error(w, "status must be approved or rejected", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payment models.Payment
	if err := db.PaymentsCollection.FindOne(ctx, bson.M{"paymentid": paymentID}).Decode(&payment); err != nil {
		http.Error(w, "Payment not found", http.StatusNotFound)
		return
	}

	now := time.Now()
	_, err := db.PaymentsCollection.UpdateOne(ctx,
		bson.M{"paymentid": paymentID},
		bson.M{"$set": bson.M{"status": input.Status, "reviewedAt": now, "reviewedBy": adminID}},
	)
	if err != nil {
		log.Println("ReviewPayment UpdateOne error:", err)
		http.Error(w, "Failed to update payment", http.StatusInternalServerError)
		return
	}

	// Sync the enrollments created by this submission. Writes are not
	// transactional; a midway failure surfaces in the enrollment view.
	enrollmentStatus := models.EnrollmentApproved
	if input.Status == models.PaymentRejected {
		enrollmentStatus = models.EnrollmentRejected
	}
	set := bson.M{"status": enrollmentStatus, "updatedAt": now}
	if enrollmentStatus == models.EnrollmentApproved {
		set["approvedBy"] = adminID
	} else {
		set["rejectedBy"] = adminID
	}
	_, err = db.EnrollmentsCollection.UpdateMany(ctx,
		bson.M{"userId": payment.UserID, "paymentInfo.transactionId": payment.TransactionID},
		bson.M{"$set": set},
	)
	if err != nil {
		log.Println("ReviewPayment enrollment sync error:", err)
	}

	dash.NotifyPendingChanged()

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true, "status": input.Status})
}

// GetPendingCount returns the number of pending payments for the admin badge.
func GetPendingCount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := db.PaymentsCollection.CountDocuments(ctx, bson.M{"status": models.PaymentPending})
	if err != nil {
		log.Println("GetPendingCount error:", err)
		http.Error(w, "Failed to count payments", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]int64{"pendingPayments": count})
}
