package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/aggregating"
)

func newStatsCommand() *cobra.Command {
	var (
		file    string
		routes  int
		asJSON  bool
		filters filterFlags
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Mostra os indicadores do histórico filtrado",
		RunE: func(cmd *cobra.Command, _ []string) error {
			historyFilters, err := filters.build()
			if err != nil {
				return err
			}

			records, err := fileHistory{path: file, stdin: cmd.InOrStdin()}.LoadHistory(cmd.Context())
			if err != nil {
				return err
			}
			records = aggregating.Apply(records, aggregating.FromHistoryFilters(historyFilters)...)

			stats := aggregating.ComputeStats(records)
			topRoutes := aggregating.TopRoutes(records, routes)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{"stats": stats, "top_routes": topRoutes})
			}

			renderStats(cmd.OutOrStdout(), stats, topRoutes)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "arquivo JSON com o histórico")
	cmd.Flags().IntVar(&routes, "routes", 8, "quantidade de rotas no ranking (0 = todas)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "saída em JSON")
	filters.register(cmd)

	return cmd
}

func renderStats(out io.Writer, stats domain.AggregateStats, topRoutes []domain.RouteCount) {
	summary := table.NewWriter()
	summary.SetOutputMirror(out)
	summary.SetStyle(table.StyleLight)
	summary.SetTitle("Resumen")
	summary.AppendRows([]table.Row{
		{"Boletos vendidos", humanize.Comma(int64(stats.TotalSales))},
		{"Ingresos", fmt.Sprintf("$%s", humanize.CommafWithDigits(stats.TotalRevenue, 2))},
		{"Promedio diario", humanize.FormatFloat("#,###.##", stats.AverageDailySales)},
		{"Ruta principal", fmt.Sprintf("%s (%d)", stats.TopRoute.Name, stats.TopRoute.Count)},
		{"Día con más ventas", stats.BusiestDay},
		{"Hora pico", stats.BusiestHour},
		{"Efectivo / Transferencia", fmt.Sprintf("%d / %d", stats.PaymentSplit.Cash, stats.PaymentSplit.Transfer)},
	})
	summary.Render()

	routes := table.NewWriter()
	routes.SetOutputMirror(out)
	routes.SetStyle(table.StyleLight)
	routes.SetTitle("Rutas")
	routes.AppendHeader(table.Row{"#", "Ruta", "Viajes"})
	for i, route := range topRoutes {
		routes.AppendRow(table.Row{i + 1, route.Name, route.Count})
	}
	routes.Render()

	vehicles := table.NewWriter()
	vehicles.SetOutputMirror(out)
	vehicles.SetStyle(table.StyleLight)
	vehicles.SetTitle("Ganancia por Bus")
	vehicles.AppendHeader(table.Row{"Bus", "Ganancia"})
	var total float64
	for _, vehicle := range stats.RevenuePerVehicle {
		vehicles.AppendRow(table.Row{vehicle.VehicleID, humanize.CommafWithDigits(vehicle.Revenue, 2)})
		total += vehicle.Revenue
	}
	vehicles.AppendFooter(table.Row{"Total", humanize.CommafWithDigits(total, 2)})
	vehicles.Render()
}
