package main

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// fileHistory carrega um array JSON de documentos do histórico; "-" lê da entrada padrão
type fileHistory struct {
	path  string
	stdin io.Reader
}

func (f fileHistory) LoadHistory(_ context.Context) ([]domain.SaleRecord, error) {
	var reader io.Reader = f.stdin
	if f.path != "-" {
		file, err := os.Open(f.path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		reader = file
	}

	var records []domain.SaleRecord
	if err := json.NewDecoder(reader).Decode(&records); err != nil {
		return nil, fmt.Errorf("arquivo %s não é um array JSON de vendas: %w", f.path, err)
	}
	return records, nil
}

type filterFlags struct {
	bus       string
	month     string
	date      string
	startDate string
	endDate   string
	payment   string
	search    string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.bus, "bus", "", "número do ônibus")
	cmd.Flags().StringVar(&f.month, "month", "", "mês YYYY-MM")
	cmd.Flags().StringVar(&f.date, "date", "", "data YYYY-MM-DD")
	cmd.Flags().StringVar(&f.startDate, "start-date", "", "início do período YYYY-MM-DD")
	cmd.Flags().StringVar(&f.endDate, "end-date", "", "fim do período YYYY-MM-DD")
	cmd.Flags().StringVar(&f.payment, "payment", "", "efectivo ou transferencia")
	cmd.Flags().StringVar(&f.search, "search", "", "texto procurado na rota, ônibus ou data")
}

func (f *filterFlags) build() (domain.HistoryFilters, error) {
	filters := domain.HistoryFilters{
		VehicleID: f.bus,
		Month:     f.month,
		Date:      f.date,
		Search:    f.search,
	}

	if f.month != "" {
		if _, err := utils.ParseMonth(f.month); err != nil {
			return filters, err
		}
	}

	var err error
	if filters.StartDate, err = utils.ParseDate(f.startDate); err != nil {
		return filters, fmt.Errorf("start-date inválida: %w", err)
	}
	if filters.EndDate, err = utils.ParseDate(f.endDate); err != nil {
		return filters, fmt.Errorf("end-date inválida: %w", err)
	}

	if f.payment != "" {
		filters.PaymentMethod = domain.NormalizePaymentMethod(f.payment)
		if filters.PaymentMethod == "" {
			return filters, fmt.Errorf("método de pagamento desconhecido: %s", f.payment)
		}
	}

	return filters, nil
}
