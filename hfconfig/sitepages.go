package hfconfig

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

var defaultSitePages = []models.SitePage{
	{PageID: "page-home", Title: "Home", Slug: "/", Type: "static", IsVisible: true, Order: 0},
	{PageID: "page-courses", Title: "Courses", Slug: "/courses", Type: "static", IsVisible: true, Order: 1},
	{PageID: "page-community", Title: "Community", Slug: "/community", Type: "static", IsVisible: true, Order: 2},
	{PageID: "page-announcements", Title: "Announcements", Slug: "/announcements", Type: "static", IsVisible: true, Order: 3},
	{PageID: "page-my-courses", Title: "My Courses", Slug: "/my-courses", Type: "static", IsVisible: true, Order: 4},
	{PageID: "page-profile", Title: "Profile", Slug: "/profile", Type: "static", IsVisible: true, Order: 5},
	{PageID: "page-admin", Title: "Admin Dashboard", Slug: "/admin", Type: "static", IsVisible: true, Order: 6},
}

// SeedSitePages upserts the static pages the builder's link picker offers.
// Safe to call repeatedly.
func SeedSitePages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	for _, page := range defaultSitePages {
		_, err := db.SitePagesCollection.UpdateOne(ctx,
			bson.M{"_id": page.PageID},
			bson.M{
				"$set": bson.M{
					"title":     page.Title,
					"slug":      page.Slug,
					"type":      page.Type,
					"isVisible": page.IsVisible,
					"order":     page.Order,
				},
				"$setOnInsert": bson.M{"createdAt": time.Now()},
			},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			log.Println("SeedSitePages upsert error:", err)
			utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "error": "Failed to seed site pages"})
			return
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// GetSitePages lists pages for the link picker, ordered for display.
func GetSitePages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.SitePagesCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"order": 1}))
	if err != nil {
		log.Println("GetSitePages error:", err)
		// a failed read degrades to an empty picker
		utils.RespondWithJSON(w, http.StatusOK, []models.SitePage{})
		return
	}
	defer cursor.Close(ctx)

	var pages []models.SitePage
	if err := cursor.All(ctx, &pages); err != nil {
		utils.RespondWithJSON(w, http.StatusOK, []models.SitePage{})
		return
	}
	if pages == nil {
		pages = []models.SitePage{}
	}
	utils.RespondWithJSON(w, http.StatusOK, pages)
}
