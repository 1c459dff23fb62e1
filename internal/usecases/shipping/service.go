// Package shipping acompanha as encomendas transportadas nos ônibus
package shipping

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/infrastructure/repository"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/pkg/utils"
)

type ShippingService interface {
	// ListParcels filtra pelo estado normalizado; status vazio devolve todas
	ListParcels(ctx context.Context, status string) ([]*domain.Parcel, error)
	CreateParcel(ctx context.Context, parcel *domain.Parcel) (*domain.Parcel, error)
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Parcel, error)
	CountByStatus(ctx context.Context) (domain.ParcelStatusCount, error)
}

type Service struct {
	parcelRepository     repository.ParcelRepository
	generateID           func() (string, error)
	generateTrackingCode func() (string, error)
}

func NewService(parcelRepository repository.ParcelRepository) ShippingService {
	return &Service{
		parcelRepository:     parcelRepository,
		generateID:           utils.GenerateID,
		generateTrackingCode: utils.GenerateTrackingCode,
	}
}

func (s *Service) ListParcels(ctx context.Context, status string) ([]*domain.Parcel, error) {
	var wanted domain.ParcelStatus
	if status != "" {
		wanted = domain.NormalizeParcelStatus(status)
		if wanted == "" {
			return nil, ErrInvalidStatus
		}
	}

	parcels, err := s.parcelRepository.ListParcels(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar encomendas")
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	if wanted == "" {
		return parcels, nil
	}

	filtered := make([]*domain.Parcel, 0, len(parcels))
	for _, parcel := range parcels {
		if parcel.NormalizedStatus() == wanted {
			filtered = append(filtered, parcel)
		}
	}
	return filtered, nil
}

func (s *Service) CreateParcel(ctx context.Context, parcel *domain.Parcel) (*domain.Parcel, error) {
	parcel.Number = strings.TrimSpace(parcel.Number)
	if parcel.Number == "" {
		return nil, ErrMissingNumber
	}
	if parcel.Price != nil && *parcel.Price < 0 {
		return nil, ErrNegativePrice
	}

	id, err := s.generateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da encomenda: %w", err)
	}
	code, err := s.generateTrackingCode()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar código de rastreio: %w", err)
	}

	parcel.ID = id
	parcel.TrackingCode = code
	parcel.Status = string(domain.ParcelPending)
	if parcel.Price != nil {
		rounded := utils.RoundWithTwoDecimalPlace(*parcel.Price)
		parcel.Price = &rounded
	}

	if err := s.parcelRepository.CreateParcel(ctx, parcel); err != nil {
		logrus.WithError(err).Error("Erro ao criar encomenda")
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	return parcel, nil
}

// UpdateStatus aceita qualquer grafia reconhecida e grava sempre a forma canônica
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*domain.Parcel, error) {
	normalized := domain.NormalizeParcelStatus(status)
	if normalized == "" {
		return nil, ErrInvalidStatus
	}

	if err := s.parcelRepository.UpdateParcelStatus(ctx, id, normalized); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrParcelNotFound
		}
		logrus.WithError(err).WithField("parcel_id", id).Error("Erro ao atualizar estado da encomenda")
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}

	parcel, err := s.parcelRepository.GetParcelByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrParcelNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return parcel, nil
}

func (s *Service) CountByStatus(ctx context.Context) (domain.ParcelStatusCount, error) {
	parcels, err := s.parcelRepository.ListParcels(ctx)
	if err != nil {
		return domain.ParcelStatusCount{}, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return domain.CountParcelsByStatus(parcels), nil
}
