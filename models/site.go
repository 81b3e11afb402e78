package models

// SiteImage is one named slot of site imagery (hero background, about
// portrait, etc). Key is unique, the URL points at object storage.
type SiteImage struct {
	ID       int    `json:"id"`
	Key      string `json:"key"`
	ImageURL string `json:"imageUrl"`
	AltText  string `json:"altText"`
}

// SiteImageUpsertRequest is the request body for setting a site image slot.
type SiteImageUpsertRequest struct {
	Key      string `json:"key"`
	ImageURL string `json:"imageUrl"`
	AltText  string `json:"altText"`
}

// SiteSettings holds the styling configuration the front end applies at
// load time. Stored as a single JSON document, replaced wholesale.
type SiteSettings struct {
	AccentColor    string `json:"accentColor"`
	HeadingFont    string `json:"headingFont"`
	BodyFont       string `json:"bodyFont"`
	HeroTagline    string `json:"heroTagline"`
	ContactEmail   string `json:"contactEmail"`
	InstagramURL   string `json:"instagramUrl"`
	WhatsAppNumber string `json:"whatsappNumber"`
}
