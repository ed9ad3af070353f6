package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"time"

	"vipcourses/db"
	"vipcourses/models"
	"vipcourses/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

func hmacSecret() []byte {
	if s := os.Getenv("RECEIPT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("receipt-secret")
}

// signReceipt returns paymentid|transactionId|signature for QR verification.
func signReceipt(paymentID, transactionID string) string {
	data := fmt.Sprintf("%s|%s", paymentID, transactionID)
	h := hmac.New(sha256.New, hmacSecret())
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// PaymentReceipt renders a PDF receipt for an approved payment. Owners and
// admins only.
func PaymentReceipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	paymentID := ps.ByName("paymentid")
	userID := utils.GetUserIDFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payment models.Payment
	if err := db.PaymentsCollection.FindOne(ctx, bson.M{"paymentid": paymentID}).Decode(&payment); err != nil {
		http.Error(w, "Payment not found", http.StatusNotFound)
		return
	}

	if payment.UserID != userID && utils.GetRoleFromRequest(r) != "admin" {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	if payment.Status != models.PaymentApproved {
		http.Error(w, "Receipt available only for approved payments", http.StatusConflict)
		return
	}

	qrPNG, err := qrcode.Encode(signReceipt(payment.PaymentID, payment.TransactionID), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Payment Receipt")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Payment ID: %s", payment.PaymentID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Name: %s", payment.UserName))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Transaction ID: %s", payment.TransactionID))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Submitted: %s", payment.SubmittedAt.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, "Courses")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, line := range payment.Courses {
		pdf.Cell(0, 8, fmt.Sprintf("%s - %.2f BDT", line.Title, line.Price))
		pdf.Ln(6)
	}
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %.2f BDT", payment.FinalAmount))

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+payment.PaymentID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// InstructionsQR returns a QR code PNG of the mobile-money payment target
// shown on the checkout screen.
func InstructionsQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	target := os.Getenv("PAYMENT_NUMBER")
	if target == "" {
		http.Error(w, "Payment number not configured", http.StatusServiceUnavailable)
		return
	}

	qrPNG, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrPNG)
}
