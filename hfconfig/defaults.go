package hfconfig

import (
	"time"

	"vipcourses/models"
)

// DefaultHeaderConfig builds the canonical header document. It mirrors the
// hard-coded header the client renders when no config resolves.
func DefaultHeaderConfig(userID string) models.HeaderFooterConfig {
	now := time.Now()
	return models.HeaderFooterConfig{
		ID:          models.DefaultConfigID,
		Name:        "Default Header",
		IsActive:    true,
		IsPublished: true,
		Content: models.ConfigContent{
			Logo: &models.Logo{
				Type:  "text",
				Text:  "All Vip Courses",
				Link:  "/",
				Alt:   "All Vip Courses Logo",
				Color: "text-primary",
			},
			Navigation: []models.NavItem{
				{ID: "nav-home", Label: "Home", Type: "internal", URL: "/", Order: 0, IsVisible: true, Children: []models.NavItem{}},
				{ID: "nav-courses", Label: "Courses", Type: "internal", URL: "/courses", Order: 1, IsVisible: true, Children: []models.NavItem{}},
				{ID: "nav-community", Label: "Community", Type: "internal", URL: "/community", Order: 2, IsVisible: true, Children: []models.NavItem{}},
				{ID: "nav-announcements", Label: "Announcements", Type: "internal", URL: "/announcements", Order: 3, IsVisible: true, Children: []models.NavItem{}},
			},
			Elements: &models.HeaderElements{
				ShowSearch:        true,
				ShowThemeToggle:   true,
				ShowUserMenu:      true,
				ShowInstallButton: true,
				CustomButtons:     []string{},
			},
			MobileMenu: &models.MobileMenu{Enabled: true, Position: "left", ShowIcons: true},
		},
		Styling: models.ConfigStyling{
			Layout: models.StylingLayout{
				Height:   "auto",
				MaxWidth: "container",
				Padding:  models.StylingPadding{Top: "0.75rem", Bottom: "0.75rem", Left: "1rem", Right: "1rem"},
				Sticky:   true,
				ZIndex:   50,
			},
			Colors: models.StylingColors{
				Background:      "bg-card",
				Text:            "text-foreground",
				Border:          "border-border",
				HoverBackground: "hover:bg-accent",
				HoverText:       "hover:text-accent-foreground",
			},
			Typography: models.StylingTypography{
				LogoFont: "font-bold",
				LogoSize: "text-xl",
				NavFont:  "font-medium",
				NavSize:  "text-sm",
			},
			Effects: models.StylingEffects{Shadow: "shadow-sm", BorderRadius: "rounded-none", Animation: "fade-in"},
		},
		DisplayRules: allowAllRules(),
		Version:      1,
		Revisions:    []models.Revision{},
		CreatedAt:    now,
		UpdatedAt:    now,
		CreatedBy:    userID,
		UpdatedBy:    userID,
	}
}

// DefaultFooterConfig builds the canonical footer document.
func DefaultFooterConfig(userID string) models.HeaderFooterConfig {
	now := time.Now()
	return models.HeaderFooterConfig{
		ID:          models.DefaultConfigID,
		Name:        "Default Footer",
		IsActive:    true,
		IsPublished: true,
		Content: models.ConfigContent{
			Brand: &models.Brand{
				Enabled:     true,
				Type:        "text",
				Text:        "All Vip Courses",
				Description: "HSC academic & admission courses at low price.",
				Order:       0,
			},
			Sections: []models.FooterSection{
				{
					ID:    "section-quick-links",
					Title: "Quick Links",
					Order: 1,
					Links: []models.FooterLink{
						{ID: "link-home", Label: "Home", Type: "internal", URL: "/", Order: 0, IsVisible: true},
						{ID: "link-courses", Label: "Courses", Type: "internal", URL: "/courses", Order: 1, IsVisible: true},
						{ID: "link-community", Label: "Community", Type: "internal", URL: "/community", Order: 2, IsVisible: true},
						{ID: "link-announcements", Label: "Announcements", Type: "internal", URL: "/announcements", Order: 3, IsVisible: true},
					},
				},
				{
					ID:    "section-contact",
					Title: "Contact",
					Order: 2,
					Links: []models.FooterLink{
						{ID: "contact-email", Label: "Email", Type: "email", Value: "easyeducation556644@gmail.com", Icon: "Mail", Order: 0, IsVisible: true},
						{ID: "contact-phone", Label: "Phone", Type: "phone", Value: "+8801969752197", Icon: "Phone", Order: 1, IsVisible: true},
					},
				},
			},
			SocialLinks: &models.SocialLinks{
				Enabled: true,
				Title:   "Connect",
				Order:   3,
				Links: []models.SocialLink{
					{ID: "social-telegram", Platform: "telegram", URL: "https://t.me/Chatbox67_bot", Icon: "Send", Order: 0, IsVisible: true},
					{ID: "social-youtube", Platform: "youtube", URL: "https://youtube.com/@allvipcourses", Icon: "Youtube", Order: 1, IsVisible: true},
					{ID: "social-whatsapp", Platform: "whatsapp", URL: "https://wa.me/8801969752197", Icon: "MessageCircle", Order: 2, IsVisible: true},
				},
			},
			Copyright: &models.Copyright{
				Enabled: true,
				// {year} is substituted client-side at render time.
				Text:  "© {year} All Vip Courses. All rights reserved.",
				Links: []models.FooterLink{},
			},
		},
		Styling: models.ConfigStyling{
			Layout: models.StylingLayout{
				Columns: 4,
				Gap:     "2rem",
				Padding: models.StylingPadding{Top: "2rem", Bottom: "2rem", Left: "1rem", Right: "1rem"},
			},
			Colors: models.StylingColors{
				Background:  "bg-card",
				Text:        "text-muted-foreground",
				HeadingText: "text-foreground",
				Border:      "border-border",
				HoverText:   "hover:text-primary",
			},
			Typography: models.StylingTypography{
				HeadingFont: "font-semibold",
				HeadingSize: "text-base",
				LinkFont:    "font-normal",
				LinkSize:    "text-sm",
			},
			Effects: models.StylingEffects{BorderTop: true, Shadow: "none"},
		},
		DisplayRules: allowAllRules(),
		Version:      1,
		Revisions:    []models.Revision{},
		CreatedAt:    now,
		UpdatedAt:    now,
		CreatedBy:    userID,
		UpdatedBy:    userID,
	}
}

func allowAllRules() *models.DisplayRules {
	return &models.DisplayRules{
		Pages:     models.PageRule{Type: "all", Pages: []string{}},
		UserRoles: models.RoleRule{Type: "all", Roles: []string{}},
		Devices:   models.DeviceRule{ShowOnMobile: true, ShowOnTablet: true, ShowOnDesktop: true},
	}
}
