package courses

import (
	"context"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"vipcourses/db"
	"vipcourses/models"
	"vipcourses/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var courseUploadPath = "./static/coursepic"

// CreateCourse handles admin course creation (multipart, optional thumbnail).
func CreateCourse(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if len(title) == 0 || len(title) > 200 {
		http.Error(w, "Title must be between 1 and 200 characters.", http.StatusBadRequest)
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil || price < 0 {
		http.Error(w, "Invalid price value. Must be a non-negative number.", http.StatusBadRequest)
		return
	}

	publishStatus := r.FormValue("publishStatus")
	if publishStatus == "" {
		publishStatus = "draft"
	}
	if publishStatus != "draft" && publishStatus != "published" {
		http.Error(w, "publishStatus must be draft or published", http.StatusBadRequest)
		return
	}

	course := models.Course{
		CourseID:      utils.GenerateID(14),
		Title:         title,
		Description:   r.FormValue("description"),
		Price:         price,
		Category:      r.FormValue("category"),
		Subcategory:   r.FormValue("subcategory"),
		PublishStatus: publishStatus,
		TelegramLink:  strings.TrimSpace(r.FormValue("telegramLink")),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
		CreatedBy:     utils.GetUserIDFromRequest(r),
	}

	if url, err := saveThumbnail(r, course.CourseID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if url != "" {
		course.ThumbnailURL = url
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := db.CoursesCollection.InsertOne(ctx, course); err != nil {
		log.Println("CreateCourse InsertOne error:", err)
		http.Error(w, "Failed to create course", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, course)
}

// EditCourse updates course fields; only submitted form values change.
func EditCourse(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	courseID := ps.ByName("courseid")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if title := strings.TrimSpace(r.FormValue("title")); title != "" {
		set["title"] = title
	}
	if desc := r.FormValue("description"); desc != "" {
		set["description"] = desc
	}
	if p := r.FormValue("price"); p != "" {
		price, err := strconv.ParseFloat(p, 64)
		if err != nil || price < 0 {
			http.Error(w, "Invalid price value", http.StatusBadRequest)
			return
		}
		set["price"] = price
	}
	if cat := r.FormValue("category"); cat != "" {
		set["category"] = cat
	}
	if sub := r.FormValue("subcategory"); sub != "" {
		set["subcategory"] = sub
	}
	if link := r.FormValue("telegramLink"); link != "" {
		set["telegramLink"] = strings.TrimSpace(link)
	}
	if status := r.FormValue("publishStatus"); status != "" {
		if status != "draft" && status != "published" {
			http.Error(w, "publishStatus must be draft or published", http.StatusBadRequest)
			return
		}
		set["publishStatus"] = status
	}

	if url, err := saveThumbnail(r, courseID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	} else if url != "" {
		set["thumbnailURL"] = url
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.CoursesCollection.UpdateOne(ctx, bson.M{"courseid": courseID}, bson.M{"$set": set})
	if err != nil {
		log.Println("EditCourse UpdateOne error:", err)
		http.Error(w, "Failed to update course", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func DeleteCourse(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	courseID := ps.ByName("courseid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.CoursesCollection.DeleteOne(ctx, bson.M{"courseid": courseID})
	if err != nil {
		log.Println("DeleteCourse error:", err)
		http.Error(w, "Failed to delete course", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// saveThumbnail stores the uploaded "thumbnail" file for a course and writes
// a 480px-wide web copy plus a small thumb. Returns the public URL, or ""
// when no file was submitted.
func saveThumbnail(r *http.Request, courseID string) (string, error) {
	file, header, err := r.FormFile("thumbnail")
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	if !utils.SupportedImageTypes[header.Header.Get("Content-Type")] {
		return "", errInvalidImage
	}

	return processThumbnail(file, courseID)
}

var errInvalidImage = &imageTypeError{}

type imageTypeError struct{}

func (*imageTypeError) Error() string {
	return "Unsupported image type. Only JPG, PNG and WEBP are allowed."
}

func processThumbnail(file multipart.File, courseID string) (string, error) {
	img, err := imaging.Decode(file)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Join(courseUploadPath, "thumb"), 0o755); err != nil {
		return "", err
	}

	fileName := courseID + ".jpg"
	web := imaging.Resize(img, 480, 0, imaging.Lanczos)
	if err := imaging.Save(web, filepath.Join(courseUploadPath, fileName)); err != nil {
		return "", err
	}

	thumb := imaging.Resize(img, 150, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(courseUploadPath, "thumb", fileName)); err != nil {
		return "", err
	}

	return "/static/coursepic/" + fileName, nil
}
