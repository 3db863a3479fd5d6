package models

// Stats are the dashboard KPIs, each a full-collection scan. Correct at
// small collection sizes; cost grows linearly with the data set.
type Stats struct {
	LiveRaffles      int `json:"liveRaffles"`
	TotalTicketsSold int `json:"totalTicketsSold"`
	LowStockPrizes   int `json:"lowStockPrizes"`
	TotalGamers      int `json:"totalGamers"`
}
