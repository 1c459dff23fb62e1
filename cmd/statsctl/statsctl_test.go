package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleHistory = `[
  {"paradaNombre":"Tulcán","fechaSalida":"2024-03-07","horaSalida":"08:15","metodoPago":"Efectivo","numeroBus":"12","precio":2.5},
  {"paradaNombre":"Tulcán","fechaSalida":"2024-03-07","horaSalida":"08:40","metodoPago":"transferencia","numeroBus":"7","precio":"3"},
  {"paradaNombre":"La Esperanza","fechaSalida":"2024-04-01","horaSalida":"17:00","metodoPago":"efectivo","numeroBus":"12","precio":"x"}
]`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestStatsCommand(t *testing.T) {
	t.Run("Tabela", func(t *testing.T) {
		out, err := execute(t, sampleHistory, "stats")
		require.NoError(t, err)
		assert.Contains(t, out, "Tulcán (2)")
		assert.Contains(t, out, "La Esperanza")
		assert.Contains(t, out, "Ganancia por Bus")
	})

	t.Run("JSON com filtro", func(t *testing.T) {
		out, err := execute(t, sampleHistory, "stats", "--json", "--month", "2024-03")
		require.NoError(t, err)

		var body struct {
			Stats struct {
				TotalSales   int     `json:"total_sales"`
				TotalRevenue float64 `json:"total_revenue"`
			} `json:"stats"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &body))
		assert.Equal(t, 2, body.Stats.TotalSales)
		assert.Equal(t, 5.5, body.Stats.TotalRevenue)
	})

	t.Run("Tipos mistos não descartam o arquivo", func(t *testing.T) {
		mixed := `[{"numeroBus":"1","precio":5},{"numeroBus":12,"horaSalida":9,"precio":10}]`
		out, err := execute(t, mixed, "stats", "--json")
		require.NoError(t, err)

		var body struct {
			Stats struct {
				TotalSales        int     `json:"total_sales"`
				TotalRevenue      float64 `json:"total_revenue"`
				RevenuePerVehicle []struct {
					VehicleID string  `json:"vehicle_id"`
					Revenue   float64 `json:"revenue"`
				} `json:"revenue_per_vehicle"`
			} `json:"stats"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &body))
		assert.Equal(t, 2, body.Stats.TotalSales)
		assert.Equal(t, 15.0, body.Stats.TotalRevenue)
		require.Len(t, body.Stats.RevenuePerVehicle, 2)
		assert.Equal(t, "12", body.Stats.RevenuePerVehicle[0].VehicleID)
	})

	t.Run("Pagamento desconhecido", func(t *testing.T) {
		_, err := execute(t, sampleHistory, "stats", "--payment", "cheque")
		assert.Error(t, err)
	})

	t.Run("Arquivo que não é array", func(t *testing.T) {
		_, err := execute(t, `{"a":1}`, "stats")
		assert.Error(t, err)
	})
}

func TestReportCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "historial.json")
	require.NoError(t, os.WriteFile(input, []byte(sampleHistory), 0o600))

	t.Run("Mensal", func(t *testing.T) {
		target := filepath.Join(dir, "marzo.xlsx")
		_, err := execute(t, "", "report", "monthly", "2024-03", "-f", input, "-o", target)
		require.NoError(t, err)

		file, err := excelize.OpenFile(target)
		require.NoError(t, err)
		defer file.Close()
		assert.NotEmpty(t, file.GetSheetList())
	})

	t.Run("Mês ausente", func(t *testing.T) {
		_, err := execute(t, "", "report", "monthly", "-f", input)
		assert.Error(t, err)
	})

	t.Run("Geral", func(t *testing.T) {
		target := filepath.Join(dir, "general.xlsx")
		out, err := execute(t, "", "report", "general", "--bus", "12", "-f", input, "-o", target)
		require.NoError(t, err)
		assert.Contains(t, out, target)
	})
}
