package domain

import "time"

const BusReportRowLimit = 50

type GeneralReport struct {
	CompanyName       string           `json:"company_name"`
	GeneratedAt       time.Time        `json:"generated_at"`
	FilterDescription string           `json:"filter_description"`
	Stats             AggregateStats   `json:"stats"`
	SalesPerMonth     []MonthlySales   `json:"sales_per_month"`
	TopRoutes         []RouteCount     `json:"top_routes"`
	SalesPerHour      []HourlySales    `json:"sales_per_hour"`
	RevenuePerVehicle []VehicleRevenue `json:"revenue_per_vehicle"`
	RevenueTotal      float64          `json:"revenue_total"`
}

type BusReport struct {
	CompanyName  string       `json:"company_name"`
	GeneratedAt  time.Time    `json:"generated_at"`
	BusNumber    string       `json:"bus_number"`
	Plate        string       `json:"plate"`
	Driver       string       `json:"driver"`
	TotalSales   int          `json:"total_sales"`
	TotalRevenue float64      `json:"total_revenue"`
	Rows         []SaleRecord `json:"rows"`
	Note         string       `json:"note,omitempty"`
}

type MonthlyReport struct {
	CompanyName       string           `json:"company_name"`
	GeneratedAt       time.Time        `json:"generated_at"`
	Month             string           `json:"month"`
	Stats             AggregateStats   `json:"stats"`
	SalesPerDay       []DailySales     `json:"sales_per_day"`
	TopRoutes         []RouteCount     `json:"top_routes"`
	RevenuePerVehicle []VehicleRevenue `json:"revenue_per_vehicle"`
}
