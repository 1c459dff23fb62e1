package reporting

import (
	"fmt"
	"io"
	"time"

	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// workbook acumula as abas de um relatório. O primeiro erro interrompe as escritas seguintes.
type workbook struct {
	file        *excelize.File
	headerStyle int
	sheets      int
	err         error
}

func newWorkbook() *workbook {
	wb := &workbook{file: excelize.NewFile()}
	wb.headerStyle, wb.err = wb.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"940016"}},
	})
	return wb
}

// addSheet grava o cabeçalho na linha 1 e as linhas a partir da linha 2
func (wb *workbook) addSheet(name string, header []any, rows [][]any) {
	if wb.err != nil {
		return
	}

	if wb.sheets == 0 {
		wb.err = wb.file.SetSheetName(defaultSheet, name)
	} else {
		_, wb.err = wb.file.NewSheet(name)
	}
	if wb.err != nil {
		return
	}
	wb.sheets++

	if len(header) > 0 {
		if wb.err = wb.file.SetSheetRow(name, "A1", &header); wb.err != nil {
			return
		}
		last, err := excelize.CoordinatesToCellName(len(header), 1)
		if err != nil {
			wb.err = err
			return
		}
		if wb.err = wb.file.SetCellStyle(name, "A1", last, wb.headerStyle); wb.err != nil {
			return
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			wb.err = err
			return
		}
		if wb.err = wb.file.SetSheetRow(name, cell, &row); wb.err != nil {
			return
		}
	}
}

func (wb *workbook) writeTo(w io.Writer) error {
	defer wb.file.Close()

	if wb.err != nil {
		return fmt.Errorf("erro ao montar planilha: %w", wb.err)
	}
	wb.file.SetActiveSheet(0)

	if _, err := wb.file.WriteTo(w); err != nil {
		return fmt.Errorf("erro ao gravar planilha: %w", err)
	}
	return nil
}

func money(value float64) float64 {
	return utils.RoundWithTwoDecimalPlace(value)
}

func summaryRows(company string, generatedAt time.Time, extra [][]any, stats domain.AggregateStats) [][]any {
	rows := [][]any{
		{"Empresa", company},
		{"Generado", generatedAt.Format("2006-01-02 15:04")},
	}
	rows = append(rows, extra...)
	return append(rows,
		[]any{"Ingresos Totales", money(stats.TotalRevenue)},
		[]any{"Total de Ventas", stats.TotalSales},
		[]any{"Ruta Más Demandada", fmt.Sprintf("%s (%d viajes)", stats.TopRoute.Name, stats.TopRoute.Count)},
		[]any{"Día Más Vendido", stats.BusiestDay},
		[]any{"Hora Más Vendida", stats.BusiestHour},
		[]any{"Efectivo", stats.PaymentSplit.Cash},
		[]any{"Transferencia", stats.PaymentSplit.Transfer},
		[]any{"Promedio Diario", money(stats.AverageDailySales)},
	)
}

func routeRows(routes []domain.RouteCount) [][]any {
	rows := make([][]any, 0, len(routes))
	for _, route := range routes {
		rows = append(rows, []any{route.Name, route.Count})
	}
	return rows
}

func vehicleRows(vehicles []domain.VehicleRevenue) [][]any {
	rows := make([][]any, 0, len(vehicles)+1)
	var total float64
	for _, vehicle := range vehicles {
		rows = append(rows, []any{"Bus " + vehicle.VehicleID, money(vehicle.Revenue)})
		total += vehicle.Revenue
	}
	return append(rows, []any{"Total", money(total)})
}

// WriteGeneralXLSX exporta o relatório geral, uma aba por seção
func WriteGeneralXLSX(w io.Writer, report *domain.GeneralReport) error {
	wb := newWorkbook()

	wb.addSheet("Resumen", []any{"Indicador", "Valor"}, summaryRows(
		report.CompanyName,
		report.GeneratedAt,
		[][]any{{"Filtro", report.FilterDescription}},
		report.Stats,
	))

	months := make([][]any, 0, len(report.SalesPerMonth))
	for _, month := range report.SalesPerMonth {
		months = append(months, []any{month.Month, month.Sales, money(month.Revenue)})
	}
	wb.addSheet("Ventas por Mes", []any{"Mes", "Boletos Vendidos", "Ingresos"}, months)

	wb.addSheet("Rutas", []any{"Ruta", "Número de Viajes"}, routeRows(report.TopRoutes))

	hours := make([][]any, 0, len(report.SalesPerHour))
	for _, hour := range report.SalesPerHour {
		hours = append(hours, []any{hour.Hour, hour.Sales})
	}
	wb.addSheet("Ventas por Hora", []any{"Hora", "Boletos Vendidos"}, hours)

	wb.addSheet("Ganancia por Bus", []any{"Bus", "Ganancia Total"}, vehicleRows(report.RevenuePerVehicle))

	return wb.writeTo(w)
}

func WriteBusXLSX(w io.Writer, report *domain.BusReport) error {
	wb := newWorkbook()

	info := [][]any{
		{"Empresa", report.CompanyName},
		{"Generado", report.GeneratedAt.Format("2006-01-02 15:04")},
		{"Número de Bus", report.BusNumber},
		{"Placa", report.Plate},
		{"Chofer", report.Driver},
		{"Total de Ventas", report.TotalSales},
		{"Ingresos Totales", money(report.TotalRevenue)},
	}
	if report.Note != "" {
		info = append(info, []any{"Nota", report.Note})
	}
	wb.addSheet("Vehículo", []any{"Campo", "Valor"}, info)

	rows := make([][]any, 0, len(report.Rows))
	for _, record := range report.Rows {
		rows = append(rows, []any{
			orNotAvailable(record.DepartureDate),
			orNotAvailable(record.DepartureTime),
			orNotAvailable(record.RouteName),
			orNotAvailable(record.PaymentMethod),
			money(record.Price.Amount()),
		})
	}
	wb.addSheet("Historial", []any{"Fecha", "Hora", "Ruta", "Método Pago", "Precio"}, rows)

	return wb.writeTo(w)
}

func WriteMonthlyXLSX(w io.Writer, report *domain.MonthlyReport) error {
	wb := newWorkbook()

	wb.addSheet("Resumen", []any{"Indicador", "Valor"}, summaryRows(
		report.CompanyName,
		report.GeneratedAt,
		[][]any{{"Mes", report.Month}},
		report.Stats,
	))

	days := make([][]any, 0, len(report.SalesPerDay))
	for _, day := range report.SalesPerDay {
		days = append(days, []any{day.Date, day.Sales, money(day.Revenue)})
	}
	wb.addSheet("Ventas por Día", []any{"Fecha", "Boletos Vendidos", "Ingresos"}, days)
	wb.addSheet("Rutas", []any{"Ruta", "Número de Viajes"}, routeRows(report.TopRoutes))

	wb.addSheet("Ganancia por Bus", []any{"Bus", "Ganancia Total"}, vehicleRows(report.RevenuePerVehicle))

	return wb.writeTo(w)
}

func orNotAvailable(value string) string {
	if value == "" {
		return domain.NotAvailable
	}
	return value
}
