package models

import "time"

// Config types accepted by the header/footer endpoints.
const (
	ConfigTypeHeader = "header"
	ConfigTypeFooter = "footer"
)

// DefaultConfigID is the well-known id of the canonical config document.
// There is exactly one such document per config type.
const DefaultConfigID = "default"

// HeaderFooterConfig is a header or footer customization document.
// Header documents use Logo/Navigation/Elements/MobileMenu, footer documents
// use Brand/Sections/SocialLinks/Copyright; the unused halves stay empty.
type HeaderFooterConfig struct {
	ID           string        `bson:"_id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	IsActive     bool          `bson:"isActive" json:"isActive"`
	IsPublished  bool          `bson:"isPublished" json:"isPublished"`
	Content      ConfigContent `bson:"content" json:"content"`
	Styling      ConfigStyling `bson:"styling" json:"styling"`
	DisplayRules *DisplayRules `bson:"displayRules,omitempty" json:"displayRules,omitempty"`
	Version      int           `bson:"version" json:"version"`
	Revisions    []Revision    `bson:"revisions" json:"revisions"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
	CreatedBy    string        `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	UpdatedBy    string        `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}

type ConfigContent struct {
	// Header fields
	Logo       *Logo           `bson:"logo,omitempty" json:"logo,omitempty"`
	Navigation []NavItem       `bson:"navigation,omitempty" json:"navigation,omitempty"`
	Elements   *HeaderElements `bson:"elements,omitempty" json:"elements,omitempty"`
	MobileMenu *MobileMenu     `bson:"mobileMenu,omitempty" json:"mobileMenu,omitempty"`

	// Footer fields
	Brand       *Brand          `bson:"brand,omitempty" json:"brand,omitempty"`
	Sections    []FooterSection `bson:"sections,omitempty" json:"sections,omitempty"`
	SocialLinks *SocialLinks    `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	Copyright   *Copyright      `bson:"copyright,omitempty" json:"copyright,omitempty"`
}

type Logo struct {
	Type  string `bson:"type" json:"type"`
	Text  string `bson:"text,omitempty" json:"text,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
	Link  string `bson:"link,omitempty" json:"link,omitempty"`
	Alt   string `bson:"alt,omitempty" json:"alt,omitempty"`
	Color string `bson:"color,omitempty" json:"color,omitempty"`
}

type NavItem struct {
	ID           string    `bson:"id" json:"id"`
	Label        string    `bson:"label" json:"label"`
	Type         string    `bson:"type" json:"type"`
	URL          string    `bson:"url" json:"url"`
	Order        int       `bson:"order" json:"order"`
	IsVisible    bool      `bson:"isVisible" json:"isVisible"`
	OpenInNewTab bool      `bson:"openInNewTab" json:"openInNewTab"`
	Children     []NavItem `bson:"children" json:"children"`
}

type HeaderElements struct {
	ShowSearch        bool     `bson:"showSearch" json:"showSearch"`
	ShowThemeToggle   bool     `bson:"showThemeToggle" json:"showThemeToggle"`
	ShowUserMenu      bool     `bson:"showUserMenu" json:"showUserMenu"`
	ShowInstallButton bool     `bson:"showInstallButton" json:"showInstallButton"`
	CustomButtons     []string `bson:"customButtons" json:"customButtons"`
}

type MobileMenu struct {
	Enabled   bool   `bson:"enabled" json:"enabled"`
	Position  string `bson:"position" json:"position"`
	ShowIcons bool   `bson:"showIcons" json:"showIcons"`
}

type Brand struct {
	Enabled     bool   `bson:"enabled" json:"enabled"`
	Type        string `bson:"type" json:"type"`
	Text        string `bson:"text,omitempty" json:"text,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Order       int    `bson:"order" json:"order"`
}

type FooterSection struct {
	ID    string       `bson:"id" json:"id"`
	Title string       `bson:"title" json:"title"`
	Order int          `bson:"order" json:"order"`
	Links []FooterLink `bson:"links" json:"links"`
}

type FooterLink struct {
	ID           string `bson:"id" json:"id"`
	Label        string `bson:"label" json:"label"`
	Type         string `bson:"type" json:"type"`
	URL          string `bson:"url,omitempty" json:"url,omitempty"`
	Value        string `bson:"value,omitempty" json:"value,omitempty"`
	Icon         string `bson:"icon,omitempty" json:"icon,omitempty"`
	Order        int    `bson:"order" json:"order"`
	IsVisible    bool   `bson:"isVisible" json:"isVisible"`
	OpenInNewTab bool   `bson:"openInNewTab,omitempty" json:"openInNewTab,omitempty"`
}

type SocialLinks struct {
	Enabled bool         `bson:"enabled" json:"enabled"`
	Title   string       `bson:"title,omitempty" json:"title,omitempty"`
	Order   int          `bson:"order" json:"order"`
	Links   []SocialLink `bson:"links" json:"links"`
}

type SocialLink struct {
	ID        string `bson:"id" json:"id"`
	Platform  string `bson:"platform" json:"platform"`
	URL       string `bson:"url" json:"url"`
	Icon      string `bson:"icon,omitempty" json:"icon,omitempty"`
	Order     int    `bson:"order" json:"order"`
	IsVisible bool   `bson:"isVisible" json:"isVisible"`
}

type Copyright struct {
	Enabled bool         `bson:"enabled" json:"enabled"`
	Text    string       `bson:"text" json:"text"`
	Links   []FooterLink `bson:"links" json:"links"`
}

type ConfigStyling struct {
	Layout     StylingLayout     `bson:"layout" json:"layout"`
	Colors     StylingColors     `bson:"colors" json:"colors"`
	Typography StylingTypography `bson:"typography" json:"typography"`
	Effects    StylingEffects    `bson:"effects" json:"effects"`
}

type StylingLayout struct {
	Height   string         `bson:"height,omitempty" json:"height,omitempty"`
	MaxWidth string         `bson:"maxWidth,omitempty" json:"maxWidth,omitempty"`
	Columns  int            `bson:"columns,omitempty" json:"columns,omitempty"`
	Gap      string         `bson:"gap,omitempty" json:"gap,omitempty"`
	Padding  StylingPadding `bson:"padding" json:"padding"`
	Sticky   bool           `bson:"sticky,omitempty" json:"sticky,omitempty"`
	ZIndex   int            `bson:"zIndex,omitempty" json:"zIndex,omitempty"`
}

type StylingPadding struct {
	Top    string `bson:"top" json:"top"`
	Bottom string `bson:"bottom" json:"bottom"`
	Left   string `bson:"left" json:"left"`
	Right  string `bson:"right" json:"right"`
}

type StylingColors struct {
	Background      string `bson:"background,omitempty" json:"background,omitempty"`
	Text            string `bson:"text,omitempty" json:"text,omitempty"`
	HeadingText     string `bson:"headingText,omitempty" json:"headingText,omitempty"`
	Border          string `bson:"border,omitempty" json:"border,omitempty"`
	HoverBackground string `bson:"hoverBackground,omitempty" json:"hoverBackground,omitempty"`
	HoverText       string `bson:"hoverText,omitempty" json:"hoverText,omitempty"`
}

type StylingTypography struct {
	LogoFont    string `bson:"logoFont,omitempty" json:"logoFont,omitempty"`
	LogoSize    string `bson:"logoSize,omitempty" json:"logoSize,omitempty"`
	NavFont     string `bson:"navFont,omitempty" json:"navFont,omitempty"`
	NavSize     string `bson:"navSize,omitempty" json:"navSize,omitempty"`
	HeadingFont string `bson:"headingFont,omitempty" json:"headingFont,omitempty"`
	HeadingSize string `bson:"headingSize,omitempty" json:"headingSize,omitempty"`
	LinkFont    string `bson:"linkFont,omitempty" json:"linkFont,omitempty"`
	LinkSize    string `bson:"linkSize,omitempty" json:"linkSize,omitempty"`
}

type StylingEffects struct {
	Shadow       string `bson:"shadow,omitempty" json:"shadow,omitempty"`
	BorderRadius string `bson:"borderRadius,omitempty" json:"borderRadius,omitempty"`
	Animation    string `bson:"animation,omitempty" json:"animation,omitempty"`
	BorderTop    bool   `bson:"borderTop,omitempty" json:"borderTop,omitempty"`
}

// DisplayRules gate which contexts a config applies to. A nil DisplayRules
// always matches.
type DisplayRules struct {
	Pages     PageRule   `bson:"pages" json:"pages"`
	UserRoles RoleRule   `bson:"userRoles" json:"userRoles"`
	Devices   DeviceRule `bson:"devices" json:"devices"`
}

type PageRule struct {
	Type  string   `bson:"type" json:"type"` // all | specific | exclude
	Pages []string `bson:"pages" json:"pages"`
}

type RoleRule struct {
	Type  string   `bson:"type" json:"type"` // all | specific
	Roles []string `bson:"roles" json:"roles"`
}

type DeviceRule struct {
	ShowOnMobile  bool `bson:"showOnMobile" json:"showOnMobile"`
	ShowOnTablet  bool `bson:"showOnTablet" json:"showOnTablet"`
	ShowOnDesktop bool `bson:"showOnDesktop" json:"showOnDesktop"`
}

// Revision is an immutable snapshot appended on save/publish. Revisions are
// archival only; there is no rollback-apply.
type Revision struct {
	Version      int           `bson:"version" json:"version"`
	Content      ConfigContent `bson:"content" json:"content"`
	Styling      ConfigStyling `bson:"styling" json:"styling"`
	DisplayRules *DisplayRules `bson:"displayRules,omitempty" json:"displayRules,omitempty"`
	IsActive     bool          `bson:"isActive" json:"isActive"`
	IsPublished  bool          `bson:"isPublished" json:"isPublished"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy    string        `bson:"updatedBy" json:"updatedBy"`
	Notes        string        `bson:"notes,omitempty" json:"notes,omitempty"`
}
