package domain

// DashboardStats é o resumo exibido na tela inicial do painel
type DashboardStats struct {
	ConnectedUsers    int               `json:"connected_users"`
	DisconnectedUsers int               `json:"disconnected_users"`
	TotalUsers        int               `json:"total_users"`
	ActiveBuses       int               `json:"active_buses"`
	InactiveBuses     int               `json:"inactive_buses"`
	ActiveDrivers     int               `json:"active_drivers"`
	Parcels           ParcelStatusCount `json:"parcels"`
	TotalIncome       float64           `json:"total_income"`
	TotalSales        int               `json:"total_sales"`
}

// LiveUpdate é a mensagem enviada aos assinantes quando uma coleção muda
type LiveUpdate struct {
	Collection string `json:"collection"`
	Data       any    `json:"data"`
	SentAt     string `json:"sent_at"`
}

const (
	CollectionHistory = "sales_history"
	CollectionUsers   = "users"
	CollectionBuses   = "buses"
	CollectionDrivers = "drivers"
	CollectionParcels = "parcels"
)

// Collections lista as coleções observadas pelas atualizações ao vivo
var Collections = []string{
	CollectionHistory,
	CollectionUsers,
	CollectionBuses,
	CollectionDrivers,
	CollectionParcels,
}
