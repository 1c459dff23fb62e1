package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/transport-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/transport-admin-api/infrastructure/repository"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/authenticating"
)

const adminPasswordEnv = "ADMIN_PASSWORD"

type adminInput struct {
	name     string
	email    string
	password string
}

func (in adminInput) validate() error {
	if strings.TrimSpace(in.name) == "" || strings.TrimSpace(in.email) == "" {
		return errors.New("--name e --email são obrigatórios")
	}
	if in.password == "" {
		return fmt.Errorf("informe --password ou a variável %s", adminPasswordEnv)
	}
	return nil
}

// seedAdmin cadastra pelo fluxo normal e promove a conta, que nasce inativa como usuario
func seedAdmin(ctx context.Context, authenticator authenticating.Authenticator, in adminInput) (*domain.User, error) {
	if err := authenticator.ValidatePasswordStrength(in.password); err != nil {
		return nil, err
	}

	user, err := authenticator.CreateUser(ctx, &domain.User{Name: in.name, Email: in.email}, in.password)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar administrador")
	}

	role := domain.RoleAdmin
	active := true
	err = authenticator.UpdateUser(ctx, &domain.UpdateUserRequest{
		ID:     user.ID,
		Role:   &role,
		Active: &active,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "usuário %d criado mas não promovido", user.ID)
	}

	user.Role = role
	user.Active = active
	return user, nil
}

func newSeedAdminCommand(load configLoader) *cobra.Command {
	var in adminInput

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Cria um usuário administrador ativo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.password == "" {
				in.password = os.Getenv(adminPasswordEnv)
			}
			if err := in.validate(); err != nil {
				return err
			}

			cfg, err := load()
			if err != nil {
				return errors.Wrap(err, "erro ao carregar configuração")
			}

			conn, err := postgres.NewConnection(cmd.Context(), cfg.Database)
			if err != nil {
				return errors.Wrap(err, "erro ao conectar ao PostgreSQL")
			}
			defer conn.Close()

			authenticator := authenticating.NewService(cfg, repository.NewUserRepository(conn))

			user, err := seedAdmin(cmd.Context(), authenticator, in)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"email":   user.Email,
			}).Info("Administrador criado")
			fmt.Fprintf(cmd.OutOrStdout(), "administrador %d criado (%s)\n", user.ID, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.name, "name", "", "nome do administrador")
	cmd.Flags().StringVar(&in.email, "email", "", "email de acesso")
	cmd.Flags().StringVar(&in.password, "password", "", "senha; se vazia usa "+adminPasswordEnv)

	return cmd
}
