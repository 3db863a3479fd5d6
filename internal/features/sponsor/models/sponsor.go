package models

import "time"

type Sponsor struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logoUrl"`
	Website   string    `json:"website"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type SponsorCreate struct {
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logoUrl"`
	Website string `json:"website"`
	Status  string `json:"status"`
}
