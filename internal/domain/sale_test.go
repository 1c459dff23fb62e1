package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_Amount(t *testing.T) {
	tests := []struct {
		name     string
		raw      any
		expected float64
	}{
		{name: "float", raw: 12.5, expected: 12.5},
		{name: "inteiro", raw: 7, expected: 7},
		{name: "int64", raw: int64(3), expected: 3},
		{name: "texto numérico", raw: "12.5", expected: 12.5},
		{name: "texto com espaços", raw: "  4 ", expected: 4},
		{name: "texto inválido", raw: "abc", expected: 0},
		{name: "texto vazio", raw: "", expected: 0},
		{name: "NaN", raw: math.NaN(), expected: 0},
		{name: "infinito", raw: math.Inf(1), expected: 0},
		{name: "texto infinito", raw: "Inf", expected: 0},
		{name: "bool", raw: true, expected: 0},
		{name: "nulo", raw: nil, expected: 0},
		{name: "objeto", raw: map[string]any{"valor": 1}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPrice(tt.raw).Amount())
		})
	}
}

func TestNormalizePaymentMethod(t *testing.T) {
	tests := map[string]PaymentMethod{
		"efectivo":      PaymentMethodCash,
		"EFECTIVO":      PaymentMethodCash,
		" cash ":        PaymentMethodCash,
		"Transferencia": PaymentMethodTransfer,
		"transfer":      PaymentMethodTransfer,
		"tarjeta":       "",
		"":              "",
	}

	for raw, expected := range tests {
		assert.Equal(t, expected, NormalizePaymentMethod(raw), raw)
	}
}

func TestSaleRecord_UnmarshalJSON(t *testing.T) {
	payload := `[
		{"id":"a","paradaNombre":"Ibarra","fechaSalida":"2024-01-01","horaSalida":"08:00","metodoPago":"efectivo","numeroBus":"12","precio":"2.50","asiento":4},
		{"id":"b","paradaNombre":"Quito","metodoPago":"transferencia","numeroBus":"7","precio":3},
		{"id":"c","precio":true},
		{"id":"d"}
	]`

	var records []SaleRecord
	require.NoError(t, json.Unmarshal([]byte(payload), &records))
	require.Len(t, records, 4)

	assert.Equal(t, "Ibarra", records[0].RouteName)
	assert.Equal(t, 2.5, records[0].Price.Amount())
	assert.Equal(t, "2.50", records[0].Price.Raw())
	assert.Equal(t, 3.0, records[1].Price.Amount())
	assert.Equal(t, 0.0, records[2].Price.Amount())
	assert.Equal(t, 0.0, records[3].Price.Amount())

	date, ok := records[0].Date()
	assert.True(t, ok)
	assert.Equal(t, 2024, date.Year())

	_, ok = records[1].Date()
	assert.False(t, ok)
}

func TestSaleRecord_UnmarshalJSON_TiposInesperados(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		validate func(t *testing.T, record SaleRecord)
	}{
		{
			name:    "Ônibus e hora numéricos viram texto",
			payload: `{"paradaNombre":"Tulcán","fechaSalida":"2024-03-07","horaSalida":14,"metodoPago":"efectivo","numeroBus":12,"precio":10}`,
			validate: func(t *testing.T, record SaleRecord) {
				assert.Equal(t, "12", record.VehicleID)
				assert.Equal(t, "14", record.DepartureTime)
				assert.Equal(t, "Tulcán", record.RouteName)
				assert.Equal(t, 10.0, record.Price.Amount())
			},
		},
		{
			name:    "Número decimal preserva a parte fracionária",
			payload: `{"numeroBus":12.5,"precio":"3"}`,
			validate: func(t *testing.T, record SaleRecord) {
				assert.Equal(t, "12.5", record.VehicleID)
				assert.Equal(t, 3.0, record.Price.Amount())
			},
		},
		{
			name:    "Bool, objeto, lista e null ficam vazios",
			payload: `{"paradaNombre":true,"fechaSalida":{"d":1},"metodoPago":["efectivo"],"numeroBus":null,"pasajero":false,"precio":4}`,
			validate: func(t *testing.T, record SaleRecord) {
				assert.Empty(t, record.RouteName)
				assert.Empty(t, record.DepartureDate)
				assert.Empty(t, record.PaymentMethod)
				assert.Empty(t, record.VehicleID)
				assert.Empty(t, record.Passenger)
				assert.Equal(t, 4.0, record.Price.Amount())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record SaleRecord
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &record))
			tt.validate(t, record)
		})
	}

	t.Run("Array misto mantém todos os registros", func(t *testing.T) {
		var records []SaleRecord
		require.NoError(t, json.Unmarshal([]byte(`[{"numeroBus":"1","precio":5},{"numeroBus":12,"precio":10}]`), &records))
		require.Len(t, records, 2)
		assert.Equal(t, "1", records[0].VehicleID)
		assert.Equal(t, "12", records[1].VehicleID)
		assert.Equal(t, 10.0, records[1].Price.Amount())
	})
}

func TestHistoryFilters_IsEmpty(t *testing.T) {
	assert.True(t, HistoryFilters{}.IsEmpty())
	assert.False(t, HistoryFilters{VehicleID: "1"}.IsEmpty())
	assert.False(t, HistoryFilters{PaymentMethod: PaymentMethodCash}.IsEmpty())
}
