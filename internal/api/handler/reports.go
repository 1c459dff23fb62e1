package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/internal/usecases/insighting"
	"github.com/vfg2006/transport-admin-api/internal/usecases/reporting"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GetGeneralReport aceita os mesmos filtros do histórico e ?format=xlsx
func GetGeneralReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseHistoryFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.BuildGeneralReport(r.Context(), filters)
		if err != nil {
			handleReportError(w, err)
			return
		}

		if wantsXLSX(r) {
			writeXLSX(w, "reporte-general.xlsx", func(out io.Writer) error {
				return reporting.WriteGeneralXLSX(out, report)
			})
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetBusReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := pathParam(r, "number")
		if number == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Número do ônibus não fornecido", nil)
			return
		}

		report, err := service.BuildBusReport(r.Context(), number)
		if err != nil {
			handleReportError(w, err)
			return
		}

		if wantsXLSX(r) {
			writeXLSX(w, fmt.Sprintf("reporte-bus-%s.xlsx", report.BusNumber), func(out io.Writer) error {
				return reporting.WriteBusXLSX(out, report)
			})
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetMonthlyReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := service.BuildMonthlyReport(r.Context(), pathParam(r, "month"))
		if err != nil {
			handleReportError(w, err)
			return
		}

		if wantsXLSX(r) {
			writeXLSX(w, fmt.Sprintf("reporte-mensual-%s.xlsx", report.Month), func(out io.Writer) error {
				return reporting.WriteMonthlyXLSX(out, report)
			})
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func wantsXLSX(r *http.Request) bool {
	return strings.EqualFold(r.URL.Query().Get("format"), "xlsx")
}

// writeXLSX gera a planilha em memória para não enviar um arquivo pela metade em caso de erro
func writeXLSX(w http.ResponseWriter, filename string, write func(io.Writer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		logrus.WithError(err).WithField("filename", filename).Error("Erro ao gerar planilha")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar planilha", nil)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logrus.WithError(err).Warn("Erro ao enviar planilha")
	}
}

func handleReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reporting.ErrBusNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, reporting.ErrInvalidMonth), errors.Is(err, insighting.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		logrus.WithError(err).Error("Erro ao gerar relatório")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gerar relatório", nil)
	}
}
