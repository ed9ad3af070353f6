package categories

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"vipcourses/db"
	"vipcourses/models"
	"vipcourses/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type categoryWithSubs struct {
	models.Category `bson:",inline"`
	Subcategories   []models.Subcategory `json:"subcategories"`
}

// GetCategories returns all categories with their subcategories nested,
// ordered for the storefront menus.
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	catCursor, err := db.CategoriesCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"order": 1}))
	if err != nil {
		log.Println("GetCategories Find error:", err)
		http.Error(w, "Could not retrieve categories", http.StatusInternalServerError)
		return
	}
	defer catCursor.Close(ctx)

	var cats []models.Category
	if err := catCursor.All(ctx, &cats); err != nil {
		http.Error(w, "Error reading categories", http.StatusInternalServerError)
		return
	}

	subCursor, err := db.SubcategoriesCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"order": 1}))
	if err != nil {
		log.Println("GetCategories subcategories Find error:", err)
		http.Error(w, "Could not retrieve subcategories", http.StatusInternalServerError)
		return
	}
	defer subCursor.Close(ctx)

	var subs []models.Subcategory
	if err := subCursor.All(ctx, &subs); err != nil {
		http.Error(w, "Error reading subcategories", http.StatusInternalServerError)
		return
	}

	byCategory := make(map[string][]models.Subcategory)
	for _, s := range subs {
		byCategory[s.CategoryID] = append(byCategory[s.CategoryID], s)
	}

	out := make([]categoryWithSubs, 0, len(cats))
	for _, c := range cats {
		subsFor := byCategory[c.CategoryID]
		if subsFor == nil {
			subsFor = []models.Subcategory{}
		}
		out = append(out, categoryWithSubs{Category: c, Subcategories: subsFor})
	}

	utils.RespondWithJSON(w, http.StatusOK, out)
}

func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name  string `json:"name"`
		Order int    `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cat := models.Category{
		CategoryID: utils.GenerateID(12),
		Name:       input.Name,
		Order:      input.Order,
		CreatedAt:  time.Now(),
	}
	if _, err := db.CategoriesCollection.InsertOne(ctx, cat); err != nil {
		log.Println("CreateCategory InsertOne error:", err)
		http.Error(w, "Failed to create category", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, cat)
}

func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	categoryID := ps.ByName("categoryid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.CategoriesCollection.DeleteOne(ctx, bson.M{"categoryid": categoryID})
	if err != nil {
		log.Println("DeleteCategory error:", err)
		http.Error(w, "Failed to delete category", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	// Subcategories of a removed category go with it.
	if _, err := db.SubcategoriesCollection.DeleteMany(ctx, bson.M{"categoryid": categoryID}); err != nil {
		log.Println("DeleteCategory subcategories cleanup error:", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func CreateSubcategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	categoryID := ps.ByName("categoryid")

	var input struct {
		Name  string `json:"name"`
		Order int    `json:"order"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	count, err := db.CategoriesCollection.CountDocuments(ctx, bson.M{"categoryid": categoryID})
	if err != nil || count == 0 {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	sub := models.Subcategory{
		SubcategoryID: utils.GenerateID(12),
		CategoryID:    categoryID,
		Name:          input.Name,
		Order:         input.Order,
		CreatedAt:     time.Now(),
	}
	if _, err := db.SubcategoriesCollection.InsertOne(ctx, sub); err != nil {
		log.Println("CreateSubcategory InsertOne error:", err)
		http.Error(w, "Failed to create subcategory", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, sub)
}

func DeleteSubcategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	subcategoryID := ps.ByName("subcategoryid")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.SubcategoriesCollection.DeleteOne(ctx, bson.M{"subcategoryid": subcategoryID})
	if err != nil {
		log.Println("DeleteSubcategory error:", err)
		http.Error(w, "Failed to delete subcategory", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Subcategory not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
