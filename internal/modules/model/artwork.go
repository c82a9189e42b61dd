package model

import (
	"time"
)

// Artwork status values. The set is closed; anything else is invalid input.
const (
	StatusAvailable = "Available"
	StatusSold      = "Sold"
	StatusReserved  = "Reserved"
	StatusNFS       = "NFS"
)

// ValidStatus reports whether s is one of the fixed status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusSold, StatusReserved, StatusNFS:
		return true
	}
	return false
}

// AI generation operation names accepted by /api/ai/generate.
const (
	GenerateTitle       = "title"
	GenerateDescription = "description"
	GenerateTags        = "tags"
)

// ValidGenerateType reports whether t is a known generation operation.
func ValidGenerateType(t string) bool {
	switch t {
	case GenerateTitle, GenerateDescription, GenerateTags:
		return true
	}
	return false
}

// ArtworkRecord is one catalogued piece. The caller supplies and owns the id;
// every save with the same id is a full overwrite of the record. Each record
// pairs one-to-one with an image file and a JSON file named from the id.
type ArtworkRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Price       string   `json:"price,omitempty"`
	Dimensions  string   `json:"dimensions,omitempty"`
	Medium      string   `json:"medium,omitempty"`
	Status      string   `json:"status"`

	// Derived at save time, immutable until the next save.
	ImagePath string `json:"imagePath"`
	FileName  string `json:"fileName"`

	LastUpdated time.Time `json:"lastUpdated"`
}

// ImageFileName returns the bare image file name for the CSV rendering.
func (a ArtworkRecord) ImageFileName() string {
	return a.FileName
}
