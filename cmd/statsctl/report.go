package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/internal/usecases/reporting"
)

func newReportCommand() *cobra.Command {
	var (
		file    string
		out     string
		company string
		filters filterFlags
	)

	cmd := &cobra.Command{
		Use:       "report general|monthly YYYY-MM",
		Short:     "Gera a planilha XLSX do relatório geral ou mensal",
		ValidArgs: []string{"general", "monthly"},
		Args:      cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &config.Config{Company: config.Company{Name: company}}
			// relatórios por ônibus precisam do cadastro da frota, que só existe no banco
			reporter := reporting.NewService(cfg, fileHistory{path: file, stdin: cmd.InOrStdin()}, nil, nil)

			var write func(io.Writer) error
			switch args[0] {
			case "general":
				historyFilters, err := filters.build()
				if err != nil {
					return err
				}
				report, err := reporter.BuildGeneralReport(cmd.Context(), historyFilters)
				if err != nil {
					return err
				}
				write = func(w io.Writer) error { return reporting.WriteGeneralXLSX(w, report) }

			case "monthly":
				if len(args) < 2 {
					return errors.New("informe o mês: report monthly YYYY-MM")
				}
				report, err := reporter.BuildMonthlyReport(cmd.Context(), args[1])
				if err != nil {
					return err
				}
				write = func(w io.Writer) error { return reporting.WriteMonthlyXLSX(w, report) }

			default:
				return fmt.Errorf("relatório desconhecido: %s", args[0])
			}

			target, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := write(target); err != nil {
				target.Close()
				return err
			}
			if err := target.Close(); err != nil {
				return err
			}

			logrus.WithField("file", out).Info("Relatório gerado")
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "arquivo JSON com o histórico")
	cmd.Flags().StringVarP(&out, "out", "o", "reporte.xlsx", "arquivo XLSX de saída")
	cmd.Flags().StringVar(&company, "company", "Trans Doramald", "nome da empresa no cabeçalho")
	filters.register(cmd)

	return cmd
}
