package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/insighting"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
	"github.com/vfg2006/transport-admin-api/pkg/log"
	"github.com/vfg2006/transport-admin-api/pkg/utils"
)

const defaultSnapshots = 30

// parseHistoryFilters lê os filtros do histórico da query string:
// bus, month (YYYY-MM), date (YYYY-MM-DD), start_date, end_date, payment e search
func parseHistoryFilters(r *http.Request) (domain.HistoryFilters, error) {
	query := r.URL.Query()

	filters := domain.HistoryFilters{
		VehicleID: strings.TrimSpace(query.Get("bus")),
		Search:    strings.TrimSpace(query.Get("search")),
	}

	if month := query.Get("month"); month != "" {
		if _, err := utils.ParseMonth(month); err != nil {
			return filters, err
		}
		filters.Month = month
	}

	if date := query.Get("date"); date != "" {
		if _, err := utils.ParseDate(date); err != nil {
			return filters, errors.New("data inválida, use YYYY-MM-DD")
		}
		filters.Date = date
	}

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return filters, errors.New("start_date inválida, use YYYY-MM-DD")
	}
	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return filters, errors.New("end_date inválida, use YYYY-MM-DD")
	}
	if startDate != nil && endDate != nil && startDate.After(*endDate) {
		return filters, insighting.ErrInvalidPeriod
	}
	filters.StartDate = startDate
	filters.EndDate = endDate

	if payment := query.Get("payment"); payment != "" {
		method := domain.NormalizePaymentMethod(payment)
		if method == "" {
			return filters, errors.New("método de pagamento inválido, use efectivo ou transferencia")
		}
		filters.PaymentMethod = method
	}

	return filters, nil
}

// parsePagination só valida; limite ausente vai como 0 e o padrão e o teto ficam com o serviço
func parsePagination(r *http.Request) (domain.Pagination, error) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil || limit < 0 {
		return domain.Pagination{}, errors.New("limit inválido")
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil || offset < 0 {
		return domain.Pagination{}, errors.New("offset inválido")
	}

	return domain.Pagination{Limit: limit, Offset: offset}, nil
}

func GetHistory(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseHistoryFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		page, err := parsePagination(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		result, err := service.GetHistory(r.Context(), filters, page)
		if err != nil {
			handleInsightError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func GetHistoryStats(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseHistoryFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		stats, err := service.GetHistoryStats(r.Context(), filters)
		if err != nil {
			handleInsightError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// GetHistoryCharts aceita routes, days e vehicles para limitar cada série
func GetHistoryCharts(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseHistoryFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		opts := domain.DefaultChartOptions()
		for name, target := range map[string]*int{
			"routes":   &opts.RouteLimit,
			"days":     &opts.DayWindow,
			"vehicles": &opts.VehicleLimit,
		} {
			value, err := queryInt(r, name, *target)
			if err != nil || value < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, name+" inválido", nil)
				return
			}
			*target = value
		}

		charts, err := service.GetHistoryCharts(r.Context(), filters, opts)
		if err != nil {
			handleInsightError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, charts)
	}
}

func GetDashboard(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.GetDashboardStats(r.Context())
		if err != nil {
			handleInsightError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// GetDailySnapshots devolve os fechamentos diários; sem período usa os últimos 30 dias
func GetDailySnapshots(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use YYYY-MM-DD", nil)
			return
		}
		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use YYYY-MM-DD", nil)
			return
		}

		end := utils.TruncateDay(time.Now())
		if endDate != nil {
			end = *endDate
		}
		start := end.AddDate(0, 0, -(defaultSnapshots - 1))
		if startDate != nil {
			start = *startDate
		}

		snapshots, err := service.GetDailySnapshots(r.Context(), start, end)
		if err != nil {
			handleInsightError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshots)
	}
}

func handleInsightError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, insighting.ErrInvalidPeriod) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro ao consultar estatísticas")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o histórico de vendas", nil)
}
