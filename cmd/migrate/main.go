// migrate aplica ou desfaz o esquema do banco e cria o primeiro administrador
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/transport-admin-api/internal/config"
	"github.com/vfg2006/transport-admin-api/pkg/log"
)

func main() {
	if err := newRootCommand(config.NewConfig).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}

type configLoader func() (*config.Config, error)

func newRootCommand(loadConfig configLoader) *cobra.Command {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Migrações do banco de dados",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	load := func() (*config.Config, error) {
		cfg, err := loadConfig()
		if err != nil {
			return nil, err
		}
		log.Setup(cfg.App.LogLevel)
		return cfg, nil
	}

	root.AddCommand(newUpCommand(load))
	root.AddCommand(newDownCommand(load))
	root.AddCommand(newVersionCommand(load))
	root.AddCommand(newSeedAdminCommand(load))

	return root
}
