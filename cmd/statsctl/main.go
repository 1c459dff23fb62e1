// statsctl calcula as estatísticas do histórico de vendas a partir de um export JSON, sem banco
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/transport-admin-api/pkg/log"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "statsctl",
		Short:         "Estatísticas e relatórios do histórico de vendas",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.Setup(logLevel)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "nível de log")

	root.AddCommand(newStatsCommand())
	root.AddCommand(newReportCommand())

	return root
}
