package hfconfig

import (
	"context"
	"fmt"
	"time"

	"vipcourses/db"
	"vipcourses/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func collectionFor(configType string) (*mongo.Collection, error) {
	switch configType {
	case models.ConfigTypeHeader:
		return db.HeaderConfigsCollection, nil
	case models.ConfigTypeFooter:
		return db.FooterConfigsCollection, nil
	default:
		return nil, fmt.Errorf("unknown config type %q", configType)
	}
}

// ShouldDisplay reports whether the config applies to the given page path,
// user role and device. A config without display rules applies everywhere.
func ShouldDisplay(cfg *models.HeaderFooterConfig, path, role, device string) bool {
	if cfg == nil || cfg.DisplayRules == nil {
		return true
	}
	rules := cfg.DisplayRules

	switch rules.Pages.Type {
	case "specific":
		if !contains(rules.Pages.Pages, path) {
			return false
		}
	case "exclude":
		if contains(rules.Pages.Pages, path) {
			return false
		}
	}

	if rules.UserRoles.Type == "specific" && !contains(rules.UserRoles.Roles, role) {
		return false
	}

	switch device {
	case "mobile":
		if !rules.Devices.ShowOnMobile {
			return false
		}
	case "tablet":
		if !rules.Devices.ShowOnTablet {
			return false
		}
	case "desktop":
		if !rules.Devices.ShowOnDesktop {
			return false
		}
	}

	return true
}

// pickConfig applies the fallback chain. defaultCfg, when active and
// published, wins unconditionally: its rules only decide whether other
// configs would take precedence, never whether to give up. candidates must
// be active+published and sorted by updatedAt descending; the first whose
// rules match the context wins, else the most recent, else nothing.
func pickConfig(defaultCfg *models.HeaderFooterConfig, candidates []models.HeaderFooterConfig, path, role, device string) *models.HeaderFooterConfig {
	if defaultCfg != nil && defaultCfg.IsActive && defaultCfg.IsPublished {
		return defaultCfg
	}
	for i := range candidates {
		if ShouldDisplay(&candidates[i], path, role, device) {
			return &candidates[i]
		}
	}
	if len(candidates) > 0 {
		return &candidates[0]
	}
	return nil
}

// Resolve returns the single config document to render for the context, or
// nil when no configuration exists and the client must use its hard-coded
// fallback UI.
func Resolve(ctx context.Context, configType, path, role, device string) (*models.HeaderFooterConfig, error) {
	coll, err := collectionFor(configType)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var defaultCfg *models.HeaderFooterConfig
	var fetched models.HeaderFooterConfig
	err = coll.FindOne(ctx, bson.M{"_id": models.DefaultConfigID}).Decode(&fetched)
	switch err {
	case nil:
		defaultCfg = &fetched
	case mongo.ErrNoDocuments:
		// fall through to the query
	default:
		return nil, err
	}

	if defaultCfg != nil && defaultCfg.IsActive && defaultCfg.IsPublished {
		return defaultCfg, nil
	}

	cursor, err := coll.Find(ctx,
		bson.M{"isActive": true, "isPublished": true},
		options.Find().SetSort(bson.M{"updatedAt": -1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var candidates []models.HeaderFooterConfig
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}

	return pickConfig(defaultCfg, candidates, path, role, device), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
