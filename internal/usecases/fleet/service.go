// Package fleet cuida dos ônibus das duas saídas e dos motoristas registrados
package fleet

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/infrastructure/repository"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
	"github.com/vfg2006/transport-admin-api/pkg/utils"
)

type FleetService interface {
	ListBuses(ctx context.Context, origin string) ([]*domain.Bus, error)
	GetBus(ctx context.Context, id string) (*domain.Bus, error)
	CreateBus(ctx context.Context, bus *domain.Bus) (*domain.Bus, error)
	UpdateBus(ctx context.Context, req domain.UpdateBusRequest) (*domain.Bus, error)

	ListDrivers(ctx context.Context, activeOnly bool) ([]*domain.Driver, error)
	CreateDriver(ctx context.Context, driver *domain.Driver) (*domain.Driver, error)
	UpdateDriver(ctx context.Context, req domain.UpdateDriverRequest) (*domain.Driver, error)
}

type Service struct {
	busRepository    repository.BusRepository
	driverRepository repository.DriverRepository
	generateID       func() (string, error)
}

func NewService(busRepository repository.BusRepository, driverRepository repository.DriverRepository) FleetService {
	return &Service{
		busRepository:    busRepository,
		driverRepository: driverRepository,
		generateID:       utils.GenerateID,
	}
}

func (s *Service) ListBuses(ctx context.Context, origin string) ([]*domain.Bus, error) {
	var filter *domain.BusOrigin
	if origin != "" {
		o := domain.BusOrigin(origin)
		if !o.IsValid() {
			return nil, NewFleetError(ErrInvalidOrigin, apiErrors.ErrInvalidRequest, origin)
		}
		filter = &o
	}

	buses, err := s.busRepository.ListBuses(ctx, filter)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar ônibus")
		return nil, NewFleetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar ônibus")
	}

	return buses, nil
}

func (s *Service) GetBus(ctx context.Context, id string) (*domain.Bus, error) {
	bus, err := s.busRepository.GetBusByID(ctx, id)
	if err != nil {
		return nil, s.mapBusError(err, id)
	}
	return bus, nil
}

func (s *Service) CreateBus(ctx context.Context, bus *domain.Bus) (*domain.Bus, error) {
	bus.Number = strings.TrimSpace(bus.Number)
	if bus.Number == "" {
		return nil, NewFleetError(ErrMissingBusNumber, apiErrors.ErrMissingRequiredData, "")
	}
	if !bus.Origin.IsValid() {
		return nil, NewFleetError(ErrInvalidOrigin, apiErrors.ErrInvalidRequest, string(bus.Origin))
	}
	if bus.Capacity <= 0 {
		return nil, NewFleetError(ErrInvalidCapacity, apiErrors.ErrInvalidRequest, "")
	}

	existing, err := s.busRepository.GetBusByNumber(ctx, bus.Number)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		logrus.WithError(err).Error("Erro ao verificar número do ônibus")
		return nil, NewFleetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}
	if existing != nil {
		return nil, NewFleetErrorWithID(ErrBusAlreadyExists, apiErrors.ErrResourceConflict, existing.ID, bus.Number)
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewFleetError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	bus.ID = id

	if err := s.busRepository.CreateBus(ctx, bus); err != nil {
		logrus.WithError(err).WithField("bus_number", bus.Number).Error("Erro ao criar ônibus")
		return nil, NewFleetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar ônibus")
	}

	return bus, nil
}

func (s *Service) UpdateBus(ctx context.Context, req domain.UpdateBusRequest) (*domain.Bus, error) {
	if req.Capacity != nil && *req.Capacity <= 0 {
		return nil, NewFleetError(ErrInvalidCapacity, apiErrors.ErrInvalidRequest, "")
	}
	if req.Driver != nil {
		trimmed := strings.TrimSpace(*req.Driver)
		req.Driver = &trimmed
	}

	if err := s.busRepository.UpdateBus(ctx, req); err != nil {
		return nil, s.mapBusError(err, req.ID)
	}

	return s.GetBus(ctx, req.ID)
}

func (s *Service) ListDrivers(ctx context.Context, activeOnly bool) ([]*domain.Driver, error) {
	drivers, err := s.driverRepository.ListDrivers(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar motoristas")
		return nil, NewFleetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar motoristas")
	}

	if !activeOnly {
		return drivers, nil
	}

	active := make([]*domain.Driver, 0, len(drivers))
	for _, driver := range drivers {
		if driver.Active {
			active = append(active, driver)
		}
	}
	return active, nil
}

func (s *Service) CreateDriver(ctx context.Context, driver *domain.Driver) (*domain.Driver, error) {
	driver.Name = strings.TrimSpace(driver.Name)
	if driver.Name == "" {
		return nil, NewFleetError(ErrMissingDriverName, apiErrors.ErrMissingRequiredData, "")
	}
	driver.Plate = strings.ToUpper(strings.TrimSpace(driver.Plate))

	id, err := s.generateID()
	if err != nil {
		return nil, NewFleetError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}
	driver.ID = id
	driver.Active = true

	if err := s.driverRepository.CreateDriver(ctx, driver); err != nil {
		logrus.WithError(err).Error("Erro ao criar motorista")
		return nil, NewFleetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar motorista")
	}

	return driver, nil
}

func (s *Service) UpdateDriver(ctx context.Context, req domain.UpdateDriverRequest) (*domain.Driver, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, NewFleetError(ErrMissingDriverName, apiErrors.ErrMissingRequiredData, "")
	}
	if req.Plate != nil {
		plate := strings.ToUpper(strings.TrimSpace(*req.Plate))
		req.Plate = &plate
	}

	if err := s.driverRepository.UpdateDriver(ctx, req); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewFleetErrorWithID(ErrDriverNotFound, apiErrors.ErrResourceNotFound, req.ID, "")
		}
		logrus.WithError(err).Error("Erro ao atualizar motorista")
		return nil, NewFleetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	driver, err := s.driverRepository.GetDriverByID(ctx, req.ID)
	if err != nil {
		return nil, NewFleetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return driver, nil
}

func (*Service) mapBusError(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return NewFleetErrorWithID(ErrBusNotFound, apiErrors.ErrResourceNotFound, id, "")
	}
	logrus.WithError(err).WithField("bus_id", id).Error("Erro ao acessar ônibus")
	return NewFleetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
}
