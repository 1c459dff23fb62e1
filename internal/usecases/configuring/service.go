// Package configuring guarda a configuração do aplicativo móvel e os lugares de saída
package configuring

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/transport-admin-api/infrastructure/repository"
	"github.com/vfg2006/transport-admin-api/internal/domain"
)

var (
	ErrNotConfigured       = errors.New("versão do aplicativo ainda não configurada")
	ErrMinimumAboveCurrent = errors.New("a versão mínima não pode ser maior que a versão atual")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

type SettingsService interface {
	GetAppVersion(ctx context.Context) (*domain.AppVersionConfig, error)
	UpdateAppVersion(ctx context.Context, cfg domain.AppVersionConfig) (*domain.AppVersionConfig, error)
	ListDeparturePlaces(ctx context.Context, activeOnly bool) ([]*domain.DeparturePlace, error)
}

type Service struct {
	settingsRepository repository.SettingsRepository
}

func NewService(settingsRepository repository.SettingsRepository) SettingsService {
	return &Service{settingsRepository: settingsRepository}
}

func (s *Service) GetAppVersion(ctx context.Context) (*domain.AppVersionConfig, error) {
	cfg, err := s.settingsRepository.GetAppVersion(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotConfigured
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return cfg, nil
}

// UpdateAppVersion só compara as versões quando ambas são numéricas (1.2.3); outros formatos são gravados como vieram
func (s *Service) UpdateAppVersion(ctx context.Context, cfg domain.AppVersionConfig) (*domain.AppVersionConfig, error) {
	cfg.CurrentVersion = strings.TrimSpace(cfg.CurrentVersion)
	cfg.MinimumVersion = strings.TrimSpace(cfg.MinimumVersion)
	cfg.APKURL = strings.TrimSpace(cfg.APKURL)

	if cmp, ok := domain.CompareVersions(cfg.MinimumVersion, cfg.CurrentVersion); ok && cmp > 0 {
		return nil, ErrMinimumAboveCurrent
	}

	if err := s.settingsRepository.SaveAppVersion(ctx, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return s.GetAppVersion(ctx)
}

func (s *Service) ListDeparturePlaces(ctx context.Context, activeOnly bool) ([]*domain.DeparturePlace, error) {
	places, err := s.settingsRepository.ListDeparturePlaces(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return places, nil
}
