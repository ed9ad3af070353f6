package hfconfig

import (
	"testing"
	"time"

	"vipcourses/models"
)

func rules(pageType string, pages []string, roleType string, roles []string, mobile, tablet, desktop bool) *models.DisplayRules {
	return &models.DisplayRules{
		Pages:     models.PageRule{Type: pageType, Pages: pages},
		UserRoles: models.RoleRule{Type: roleType, Roles: roles},
		Devices:   models.DeviceRule{ShowOnMobile: mobile, ShowOnTablet: tablet, ShowOnDesktop: desktop},
	}
}

func TestShouldDisplay(t *testing.T) {
	tests := []struct {
		name   string
		rules  *models.DisplayRules
		path   string
		role   string
		device string
		want   bool
	}{
		{"nil rules always match", nil, "/anything", "guest", "mobile", true},
		{"all axes open", rules("all", nil, "all", nil, true, true, true), "/courses", "user", "desktop", true},
		{"specific page match", rules("specific", []string{"/courses"}, "all", nil, true, true, true), "/courses", "guest", "desktop", true},
		{"specific page miss", rules("specific", []string{"/courses"}, "all", nil, true, true, true), "/", "guest", "desktop", false},
		{"exclude page hit", rules("exclude", []string{"/admin"}, "all", nil, true, true, true), "/admin", "admin", "desktop", false},
		{"exclude page miss", rules("exclude", []string{"/admin"}, "all", nil, true, true, true), "/", "admin", "desktop", true},
		{"specific role match", rules("all", nil, "specific", []string{"admin"}, true, true, true), "/", "admin", "desktop", true},
		{"specific role miss", rules("all", nil, "specific", []string{"admin"}, true, true, true), "/", "guest", "desktop", false},
		{"mobile hidden", rules("all", nil, "all", nil, false, true, true), "/", "guest", "mobile", false},
		{"tablet hidden", rules("all", nil, "all", nil, true, false, true), "/", "guest", "tablet", false},
		{"desktop hidden", rules("all", nil, "all", nil, true, true, false), "/", "guest", "desktop", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &models.HeaderFooterConfig{DisplayRules: tt.rules}
			if got := ShouldDisplay(cfg, tt.path, tt.role, tt.device); got != tt.want {
				t.Fatalf("ShouldDisplay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPickConfigDefaultWinsDespiteRules(t *testing.T) {
	// Default is gated to /courses only, yet must win even on "/" because
	// it is the fallback of last resort.
	def := &models.HeaderFooterConfig{
		ID:           models.DefaultConfigID,
		IsActive:     true,
		IsPublished:  true,
		DisplayRules: rules("specific", []string{"/courses"}, "all", nil, true, true, true),
	}
	other := models.HeaderFooterConfig{ID: "promo", IsActive: true, IsPublished: true}

	got := pickConfig(def, []models.HeaderFooterConfig{other}, "/", "guest", "desktop")
	if got == nil || got.ID != models.DefaultConfigID {
		t.Fatalf("expected default to win, got %+v", got)
	}
}

func TestPickConfigRuleMatchThenMostRecent(t *testing.T) {
	def := &models.HeaderFooterConfig{ID: models.DefaultConfigID, IsActive: false, IsPublished: true}

	newest := models.HeaderFooterConfig{
		ID:           "admin-only",
		UpdatedAt:    time.Now(),
		DisplayRules: rules("all", nil, "specific", []string{"admin"}, true, true, true),
	}
	older := models.HeaderFooterConfig{
		ID:        "everyone",
		UpdatedAt: time.Now().Add(-time.Hour),
	}
	candidates := []models.HeaderFooterConfig{newest, older}

	// guest skips the admin-only config and lands on the older open one
	got := pickConfig(def, candidates, "/", "guest", "desktop")
	if got == nil || got.ID != "everyone" {
		t.Fatalf("expected rule-matching config, got %+v", got)
	}

	// nobody matches: most recently updated wins
	onlyAdmin := []models.HeaderFooterConfig{newest}
	got = pickConfig(def, onlyAdmin, "/", "guest", "desktop")
	if got == nil || got.ID != "admin-only" {
		t.Fatalf("expected most recent fallback, got %+v", got)
	}
}

func TestPickConfigNothingAvailable(t *testing.T) {
	def := &models.HeaderFooterConfig{ID: models.DefaultConfigID, IsActive: false, IsPublished: false}
	if got := pickConfig(def, nil, "/", "guest", "desktop"); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
	if got := pickConfig(nil, nil, "/", "guest", "desktop"); got != nil {
		t.Fatalf("expected nil with no default, got %+v", got)
	}
}
