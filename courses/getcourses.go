package courses

import (
	"context"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"vipcourses/db"
	"vipcourses/models"
	"vipcourses/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetCourses lists courses with optional ?q= search, ?category= filter and
// ?sort= (newest|oldest|title). Draft courses are hidden unless the caller
// is an admin.
func GetCourses(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if utils.GetRoleFromRequest(r) != "admin" {
		filter["publishStatus"] = bson.M{"$ne": "draft"}
	}
	if cat := r.URL.Query().Get("category"); cat != "" && cat != "all" {
		filter["category"] = cat
	}
	if sub := r.URL.Query().Get("subcategory"); sub != "" {
		filter["subcategory"] = sub
	}

	cursor, err := db.CoursesCollection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		log.Println("GetCourses Find error:", err)
		http.Error(w, "Could not retrieve courses", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var courseList []models.Course
	if err := cursor.All(ctx, &courseList); err != nil {
		log.Println("GetCourses cursor.All error:", err)
		http.Error(w, "Error reading course data", http.StatusInternalServerError)
		return
	}

	if q := r.URL.Query().Get("q"); q != "" {
		courseList = filterCourses(courseList, q)
	}
	sortCourses(courseList, r.URL.Query().Get("sort"))

	if courseList == nil {
		courseList = []models.Course{}
	}
	utils.RespondWithJSON(w, http.StatusOK, courseList)
}

// filterCourses keeps courses whose title, description or category contains
// the query, case-insensitive.
func filterCourses(courseList []models.Course, q string) []models.Course {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return courseList
	}
	var out []models.Course
	for _, c := range courseList {
		if strings.Contains(strings.ToLower(c.Title), q) ||
			strings.Contains(strings.ToLower(c.Description), q) ||
			strings.Contains(strings.ToLower(c.Category), q) {
			out = append(out, c)
		}
	}
	return out
}

func sortCourses(courseList []models.Course, by string) {
	switch by {
	case "oldest":
		sort.SliceStable(courseList, func(i, j int) bool {
			return courseList[i].CreatedAt.Before(courseList[j].CreatedAt)
		})
	case "title":
		sort.SliceStable(courseList, func(i, j int) bool {
			return strings.ToLower(courseList[i].Title) < strings.ToLower(courseList[j].Title)
		})
	default: // newest, already sorted by the query
	}
}

// GetCourse returns a single course. Drafts 404 for non-admins.
func GetCourse(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	courseID := ps.ByName("courseid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var course models.Course
	if err := db.CoursesCollection.FindOne(ctx, bson.M{"courseid": courseID}).Decode(&course); err != nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	if course.PublishStatus == "draft" && utils.GetRoleFromRequest(r) != "admin" {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, course)
}
