package hfconfig

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"vipcourses/models"
	"vipcourses/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetActiveConfig resolves the config to render for the caller's context.
// ?path= and ?device= describe the page; the role comes from the optional
// JWT, defaulting to guest. 404 means "render the hard-coded fallback".
func GetActiveConfig(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	configType := ps.ByName("type")

	path := r.URL.Query().Get("path")
	if path == "" {
		path = "/"
	}
	device := r.URL.Query().Get("device")
	switch device {
	case "mobile", "tablet", "desktop":
	default:
		device = "desktop"
	}
	role := utils.GetRoleFromRequest(r)
	if role == "" {
		role = "guest"
	}

	cfg, err := Resolve(r.Context(), configType, path, role, device)
	if err != nil {
		log.Println("GetActiveConfig resolve error:", err)
		http.Error(w, "Failed to resolve configuration", http.StatusInternalServerError)
		return
	}
	if cfg == nil {
		http.Error(w, "No configuration available", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, cfg)
}

// GetConfigs lists every config document of a type for the builder.
func GetConfigs(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	coll, err := collectionFor(ps.ByName("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"updatedAt": -1}))
	if err != nil {
		http.Error(w, "Failed to list configurations", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var configs []models.HeaderFooterConfig
	if err := cursor.All(ctx, &configs); err != nil {
		http.Error(w, "Error reading configurations", http.StatusInternalServerError)
		return
	}
	if configs == nil {
		configs = []models.HeaderFooterConfig{}
	}
	utils.RespondWithJSON(w, http.StatusOK, configs)
}

func GetConfig(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	coll, err := collectionFor(ps.ByName("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var cfg models.HeaderFooterConfig
	if err := coll.FindOne(ctx, bson.M{"_id": ps.ByName("id")}).Decode(&cfg); err != nil {
		http.Error(w, "Configuration not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cfg)
}

type saveInput struct {
	models.HeaderFooterConfig
	SaveRevision bool   `json:"saveRevision"`
	Notes        string `json:"notes,omitempty"`
}

// SaveConfig upserts a whole config document. There is no concurrency
// check: two editors saving the same id overwrite each other, last write
// wins. Version and the revisions array are authoritative on the stored
// document, never taken from the request body.
func SaveConfig(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	coll, err := collectionFor(ps.ByName("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var input saveInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "error": "Invalid JSON payload"})
		return
	}
	if input.ID == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "error": "id is required"})
		return
	}

	actor := utils.GetUserIDFromRequest(r)
	now := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cfg := input.HeaderFooterConfig
	cfg.UpdatedAt = now
	cfg.UpdatedBy = actor

	var existing models.HeaderFooterConfig
	err = coll.FindOne(ctx, bson.M{"_id": cfg.ID}).Decode(&existing)
	switch err {
	case nil:
		cfg.Version = existing.Version
		cfg.Revisions = existing.Revisions
		cfg.CreatedAt = existing.CreatedAt
		cfg.CreatedBy = existing.CreatedBy
	case mongo.ErrNoDocuments:
		cfg.Version = 0
		cfg.Revisions = []models.Revision{}
		cfg.CreatedAt = now
		cfg.CreatedBy = actor
	default:
		log.Println("SaveConfig lookup error:", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "error": "Failed to save configuration"})
		return
	}

	if input.SaveRevision {
		applyRevision(&cfg, nextRevision(&cfg, actor, input.Notes))
	}

	_, err = coll.ReplaceOne(ctx, bson.M{"_id": cfg.ID}, cfg, options.Replace().SetUpsert(true))
	if err != nil {
		log.Println("SaveConfig replace error:", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "error": "Failed to save configuration"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "version": cfg.Version})
}

type publishInput struct {
	Notes string `json:"notes,omitempty"`
}

// PublishConfig flips isPublished and appends a revision snapshot taken
// after the flip, so the recorded state is the one that went live.
func PublishConfig(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	coll, err := collectionFor(ps.ByName("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var input publishInput
	if r.Body != nil {
		// notes are optional; an empty body is fine
		_ = json.NewDecoder(r.Body).Decode(&input)
	}

	actor := utils.GetUserIDFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var cfg models.HeaderFooterConfig
	if err := coll.FindOne(ctx, bson.M{"_id": ps.ByName("id")}).Decode(&cfg); err != nil {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "error": "Configuration not found"})
		return
	}

	cfg.IsPublished = true
	rev := nextRevision(&cfg, actor, input.Notes)

	_, err = coll.UpdateOne(ctx,
		bson.M{"_id": cfg.ID},
		bson.M{
			"$set": bson.M{
				"isPublished": true,
				"version":     rev.Version,
				"updatedAt":   time.Now(),
				"updatedBy":   actor,
			},
			"$push": bson.M{"revisions": rev},
		},
	)
	if err != nil {
		log.Println("PublishConfig error:", err)
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "error": "Failed to publish configuration"})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "version": rev.Version})
}

// ListRevisions returns a config's revision history, oldest first.
func ListRevisions(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	coll, err := collectionFor(ps.ByName("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var cfg models.HeaderFooterConfig
	if err := coll.FindOne(ctx, bson.M{"_id": ps.ByName("id")}).Decode(&cfg); err != nil {
		http.Error(w, "Configuration not found", http.StatusNotFound)
		return
	}
	if cfg.Revisions == nil {
		cfg.Revisions = []models.Revision{}
	}
	utils.RespondWithJSON(w, http.StatusOK, cfg.Revisions)
}

// EnsureDefaults creates the canonical default header and footer documents
// when they are missing. Existing documents are left untouched.
func EnsureDefaults(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	actor := utils.GetUserIDFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	created := []string{}
	for _, c := range []struct {
		configType string
		build      func(string) models.HeaderFooterConfig
	}{
		{models.ConfigTypeHeader, DefaultHeaderConfig},
		{models.ConfigTypeFooter, DefaultFooterConfig},
	} {
		coll, _ := collectionFor(c.configType)
		count, err := coll.CountDocuments(ctx, bson.M{"_id": models.DefaultConfigID})
		if err != nil {
			log.Println("EnsureDefaults count error:", err)
			http.Error(w, "Failed to check default configurations", http.StatusInternalServerError)
			return
		}
		if count > 0 {
			continue
		}
		if _, err := coll.InsertOne(ctx, c.build(actor)); err != nil {
			log.Println("EnsureDefaults insert error:", err)
			http.Error(w, "Failed to create default configuration", http.StatusInternalServerError)
			return
		}
		created = append(created, c.configType)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "created": created})
}
