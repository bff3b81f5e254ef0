package models

// Service describes one drone service offered in the catalogue.
type Service struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
