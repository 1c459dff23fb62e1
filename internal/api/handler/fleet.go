package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/fleet"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
)

type CreateBusRequest struct {
	Number   string  `json:"number" validate:"required"`
	Route    string  `json:"route"`
	Capacity int     `json:"capacity" validate:"required,min=1"`
	Driver   *string `json:"driver"`
	Active   *bool   `json:"active"`
	Origin   string  `json:"origin" validate:"required,oneof=la_esperanza tulcan"`
}

type CreateDriverRequest struct {
	Name     string  `json:"name" validate:"required"`
	Plate    string  `json:"plate"`
	Capacity *string `json:"capacity"`
	License  *string `json:"license"`
	Active   *bool   `json:"active"`
}

// ListBuses aceita ?origin=la_esperanza|tulcan
func ListBuses(service fleet.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buses, err := service.ListBuses(r.Context(), r.URL.Query().Get("origin"))
		if err != nil {
			handleFleetError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, buses)
	}
}

func GetBus(service fleet.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bus, err := service.GetBus(r.Context(), pathParam(r, "id"))
		if err != nil {
			handleFleetError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, bus)
	}
}

func CreateBus(service fleet.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBusRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		bus, err := service.CreateBus(r.Context(), &domain.Bus{
			Number:   req.Number,
			Route:    req.Route,
			Capacity: req.Capacity,
			Driver:   req.Driver,
			Active:   active,
			Origin:   domain.BusOrigin(req.Origin),
		})
		if err != nil {
			handleFleetError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, bus)
	}
}

func UpdateBus(service fleet.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateBusRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		bus, err := service.UpdateBus(r.Context(), req)
		if err != nil {
			handleFleetError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, bus)
	}
}

// ListDrivers aceita ?active=true para listar só os ativos
func ListDrivers(service fleet.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drivers, err := service.ListDrivers(r.Context(), queryBool(r, "active", false))
		if err != nil {
			handleFleetError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, drivers)
	}
}

func CreateDriver(service fleet.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDriverRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		driver, err := service.CreateDriver(r.Context(), &domain.Driver{
			Name:     req.Name,
			Plate:    req.Plate,
			Capacity: req.Capacity,
			License:  req.License,
			Active:   active,
		})
		if err != nil {
			handleFleetError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, driver)
	}
}

func UpdateDriver(service fleet.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpdateDriverRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}
		req.ID = pathParam(r, "id")

		driver, err := service.UpdateDriver(r.Context(), req)
		if err != nil {
			handleFleetError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, driver)
	}
}

func handleFleetError(w http.ResponseWriter, err error) {
	var fleetErr *fleet.FleetError
	if errors.As(err, &fleetErr) {
		if fleetErr.Code == apiErrors.ErrDatabaseOperation || fleetErr.Code == apiErrors.ErrInternalServer {
			logrus.WithError(err).Error("Erro na frota")
		}

		var details any
		if fleetErr.ResourceID != "" {
			details = map[string]string{"id": fleetErr.ResourceID}
		}
		apiErrors.WriteError(w, fleetErr.Code, fleetErr.Error(), details)
		return
	}

	logrus.WithError(err).Error("Erro inesperado na frota")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}
