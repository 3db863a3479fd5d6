package models

import "time"

const StatusLive = "live"

type Raffle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	PrizeID     string    `json:"prizeId"`
	PrizeName   string    `json:"prizeName"`
	SponsorID   string    `json:"sponsorId"`
	SponsorName string    `json:"sponsorName"`
	TicketSold  int       `json:"ticketSold"`
	TicketPrice string    `json:"ticketPrice"`
	StartAt     time.Time `json:"startAt"`
	EndAt       time.Time `json:"endAt"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RaffleCreate struct {
	Title       string    `json:"title" binding:"required"`
	PrizeID     string    `json:"prizeId"`
	PrizeName   string    `json:"prizeName"`
	SponsorID   string    `json:"sponsorId"`
	SponsorName string    `json:"sponsorName"`
	TicketSold  int       `json:"ticketSold" binding:"min=0"`
	TicketPrice string    `json:"ticketPrice"`
	StartAt     time.Time `json:"startAt" binding:"required"`
	EndAt       time.Time `json:"endAt" binding:"required"`
	Status      string    `json:"status"`
}
