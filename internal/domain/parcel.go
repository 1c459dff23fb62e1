package domain

import (
	"strings"
	"time"
)

type ParcelStatus string

const (
	ParcelPending   ParcelStatus = "pendiente"
	ParcelInTransit ParcelStatus = "en_transito"
	ParcelDelivered ParcelStatus = "entregado"
)

// NormalizeParcelStatus reconhece as grafias gravadas pelo aplicativo
// ("en transito", "en tránsito", "entregada", maiúsculas...). Desconhecidos retornam "".
func NormalizeParcelStatus(raw string) ParcelStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pendiente":
		return ParcelPending
	case "en_transito", "en transito", "en tránsito":
		return ParcelInTransit
	case "entregado", "entregada":
		return ParcelDelivered
	default:
		return ""
	}
}

type Parcel struct {
	ID           string     `json:"id"`
	TrackingCode string     `json:"tracking_code"`
	Status       string     `json:"status"`
	Number       string     `json:"number"`
	Sender       *string    `json:"sender"`
	Recipient    *string    `json:"recipient"`
	Notes        *string    `json:"notes"`
	Price        *float64   `json:"price"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// NormalizedStatus devolve o estado canônico da encomenda
func (p Parcel) NormalizedStatus() ParcelStatus {
	return NormalizeParcelStatus(p.Status)
}

type ParcelStatusCount struct {
	Pending   int `json:"pending"`
	InTransit int `json:"in_transit"`
	Delivered int `json:"delivered"`
}

// CountParcelsByStatus conta as encomendas por estado normalizado
func CountParcelsByStatus(parcels []*Parcel) ParcelStatusCount {
	var count ParcelStatusCount
	for _, parcel := range parcels {
		switch parcel.NormalizedStatus() {
		case ParcelPending:
			count.Pending++
		case ParcelInTransit:
			count.InTransit++
		case ParcelDelivered:
			count.Delivered++
		}
	}
	return count
}
