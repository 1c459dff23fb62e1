package domain

import "time"

type BusRankingResponse struct {
	Month      string           `json:"month"`
	Ranking    []BusRankingItem `json:"ranking"`
	LastUpdate time.Time        `json:"last_update"`
}

type BusRankingItem struct {
	ID               int       `json:"id"`
	BusNumber        string    `json:"bus_number"`
	Month            string    `json:"month"` // mm-yyyy
	Revenue          float64   `json:"revenue"`
	Sales            int       `json:"sales"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // positivo = subiu
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
