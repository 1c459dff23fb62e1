package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/transport-admin-api/internal/domain"
	"github.com/vfg2006/transport-admin-api/internal/usecases/shipping"
	"github.com/vfg2006/transport-admin-api/pkg/apiErrors"
)

type CreateParcelRequest struct {
	Number    string   `json:"number" validate:"required"`
	Sender    *string  `json:"sender"`
	Recipient *string  `json:"recipient"`
	Notes     *string  `json:"notes"`
	Price     *float64 `json:"price" validate:"omitempty,gte=0"`
}

type UpdateParcelStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListParcels aceita ?status= com qualquer grafia reconhecida
func ListParcels(service shipping.ShippingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parcels, err := service.ListParcels(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			handleShippingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, parcels)
	}
}

func GetParcelSummary(service shipping.ShippingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := service.CountByStatus(r.Context())
		if err != nil {
			handleShippingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, count)
	}
}

func CreateParcel(service shipping.ShippingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateParcelRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		parcel, err := service.CreateParcel(r.Context(), &domain.Parcel{
			Number:    req.Number,
			Sender:    req.Sender,
			Recipient: req.Recipient,
			Notes:     req.Notes,
			Price:     req.Price,
		})
		if err != nil {
			handleShippingError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, parcel)
	}
}

func UpdateParcelStatus(service shipping.ShippingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateParcelStatusRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		parcel, err := service.UpdateStatus(r.Context(), pathParam(r, "id"), req.Status)
		if err != nil {
			handleShippingError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, parcel)
	}
}

func handleShippingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shipping.ErrParcelNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, err.Error(), nil)
	case errors.Is(err, shipping.ErrInvalidStatus), errors.Is(err, shipping.ErrNegativePrice):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, shipping.ErrMissingNumber):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, shipping.ErrDatabaseOperation):
		logrus.WithError(err).Error("Erro nas encomendas")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar as encomendas", nil)
	default:
		logrus.WithError(err).Error("Erro inesperado nas encomendas")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
