package models

import "time"

// Two distinct stock thresholds, on purpose: the dashboard KPI counts
// critically low prizes, the inventory watch list casts a wider net.
// Product has not unified them; do not conflate.
const (
	LowStockCritical = 3
	LowStockWatch    = 5

	// LowStockWatchLimit caps the watch list regardless of how many
	// prizes qualify.
	LowStockWatchLimit = 6
)

type Prize struct {
	ID          string    `json:"id"`
	PrizeName   string    `json:"prizeName"`
	KeyDetails  string    `json:"keyDetails"`
	PrizeValue  float64   `json:"prizeValue"`
	SponsorID   string    `json:"sponsorId"`
	SponsorName string    `json:"sponsorName"`
	StockLevel  int       `json:"stockLevel"`
	Status      string    `json:"status"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type PrizeCreate struct {
	PrizeName   string   `json:"prizeName" binding:"required"`
	KeyDetails  string   `json:"keyDetails"`
	PrizeValue  float64  `json:"prizeValue"`
	SponsorID   string   `json:"sponsorId"`
	SponsorName string   `json:"sponsorName"`
	StockLevel  int      `json:"stockLevel" binding:"min=0"`
	Status      string   `json:"status"`
	Images      []string `json:"images"`
}

// PrizeUpdate merges only the supplied fields; nil means untouched.
type PrizeUpdate struct {
	PrizeName   *string   `json:"prizeName"`
	KeyDetails  *string   `json:"keyDetails"`
	PrizeValue  *float64  `json:"prizeValue"`
	SponsorID   *string   `json:"sponsorId"`
	SponsorName *string   `json:"sponsorName"`
	StockLevel  *int      `json:"stockLevel"`
	Status      *string   `json:"status"`
	Images      *[]string `json:"images"`
}
