package models

// Logo is a raw record from the legacy-schema source, kept for backward
// compatibility of previously shared links. Field-poor by design: the old
// logos table only ever stored identity, name, image, industry and ordering.
type Logo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ImageURL     string `json:"imageUrl"`
	Industry     string `json:"industry"`
	DisplayOrder *int   `json:"displayOrder"`
	CreatedAt    int64  `json:"createdAt"`
}

// LogoUpsertRequest is the request body for creating or updating a legacy
// logo record from the admin dashboard.
type LogoUpsertRequest struct {
	Name         string `json:"name"`
	ImageURL     string `json:"imageUrl"`
	Industry     string `json:"industry"`
	DisplayOrder *int   `json:"displayOrder"`
}
