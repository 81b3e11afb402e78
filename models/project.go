package models

// Project is a raw record from the current-schema source. Fields mirror the
// projects table; validation happens at normalization time, not here.
type Project struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Category        string   `json:"category"`
	Industry        string   `json:"industry"`
	ImageURL        string   `json:"imageUrl"`
	Gallery         []string `json:"gallery"`
	VideoURL        string   `json:"videoUrl"`
	Tags            []string `json:"tags"`
	Client          string   `json:"client"`
	Date            string   `json:"date"`
	CreatedAt       int64    `json:"createdAt"`
	DisplayOrder    *int     `json:"displayOrder"`
}

// ProjectUpsertRequest is the request body for creating or updating a project
// from the admin dashboard.
type ProjectUpsertRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"longDescription"`
	Category        string   `json:"category"`
	Industry        string   `json:"industry"`
	ImageURL        string   `json:"imageUrl"`
	Gallery         []string `json:"gallery"`
	VideoURL        string   `json:"videoUrl"`
	Tags            []string `json:"tags"`
	Client          string   `json:"client"`
	Date            string   `json:"date"`
	DisplayOrder    *int     `json:"displayOrder"`
}
