package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/transport-admin-api/infrastructure/migration"
)

func withMigrator(load configLoader, fn func(*migration.Migrator) error) error {
	cfg, err := load()
	if err != nil {
		return errors.Wrap(err, "erro ao carregar configuração")
	}

	migrator, err := migration.New(cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão de migração")
		}
	}()

	return fn(migrator)
}

func printVersion(cmd *cobra.Command, migrator *migration.Migrator) error {
	version, dirty, err := migrator.Version()
	if err != nil {
		return errors.Wrap(err, "erro ao ler versão do esquema")
	}

	status := "limpa"
	if dirty {
		status = "suja"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "versão %d (%s)\n", version, status)
	return nil
}

func newUpCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Aplica todas as migrações pendentes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(load, func(migrator *migration.Migrator) error {
				if err := migrator.Up(); err != nil {
					return err
				}
				return printVersion(cmd, migrator)
			})
		},
	}
}

func newDownCommand(load configLoader) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Desfaz as últimas migrações",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps deve ser maior que zero, recebido %d", steps)
			}

			return withMigrator(load, func(migrator *migration.Migrator) error {
				if err := migrator.Down(steps); err != nil {
					return err
				}
				return printVersion(cmd, migrator)
			})
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "quantidade de migrações a desfazer")
	return cmd
}

func newVersionCommand(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão atual do esquema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(load, func(migrator *migration.Migrator) error {
				return printVersion(cmd, migrator)
			})
		},
	}
}
