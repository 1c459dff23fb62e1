package domain

import "time"

// DailySalesSnapshot guarda as estatísticas calculadas para um dia do histórico
type DailySalesSnapshot struct {
	ID        int64          `json:"id"`
	Date      time.Time      `json:"date"`
	Stats     AggregateStats `json:"stats"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
