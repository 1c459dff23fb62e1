package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeParcelStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected ParcelStatus
	}{
		{"pendiente", ParcelPending},
		{"Pendiente", ParcelPending},
		{"en_transito", ParcelInTransit},
		{"en transito", ParcelInTransit},
		{"En Tránsito", ParcelInTransit},
		{"entregado", ParcelDelivered},
		{"ENTREGADA", ParcelDelivered},
		{"perdido", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeParcelStatus(tt.raw))
		})
	}
}

func TestCountParcelsByStatus(t *testing.T) {
	parcels := []*Parcel{
		{Status: "pendiente"},
		{Status: "en tránsito"},
		{Status: "EN_TRANSITO"},
		{Status: "entregada"},
		{Status: "desconhecido"},
	}

	assert.Equal(t, ParcelStatusCount{Pending: 1, InTransit: 2, Delivered: 1}, CountParcelsByStatus(parcels))
	assert.Equal(t, ParcelStatusCount{}, CountParcelsByStatus(nil))
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		cmp  int
		ok   bool
	}{
		{"1.2.0", "1.10.0", -1, true},
		{"2.0", "1.9.9", 1, true},
		{"1.0", "1.0.0", 0, true},
		{"v1.3", "1.3", 0, true},
		{"1.x", "1.0", 0, false},
		{"", "1.0", 0, false},
	}

	for _, tt := range tests {
		cmp, ok := CompareVersions(tt.a, tt.b)
		assert.Equal(t, tt.ok, ok, "%s vs %s", tt.a, tt.b)
		assert.Equal(t, tt.cmp, cmp, "%s vs %s", tt.a, tt.b)
	}
}
