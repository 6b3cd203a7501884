package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
)

// ListReservationsRequest selects a guest by path id. Limit defaults to 10
// when omitted.
type ListReservationsRequest struct {
	GuestID int64 `param:"id" validate:"required,gt=0,lte=2147483647"`
	Limit   int   `query:"limit" validate:"gte=0,lte=50"`
}

func (r *ListReservationsRequest) Validate() error {
	return validation.Struct(r)
}

type ReservationsResponse struct {
	Reservations []model.Property `json:"reservations"`
}

// ReservationHandler serves a guest's reservations.
type ReservationHandler struct {
	Handler
	reservations *service.ReservationService
}

func NewReservationHandler(s *server.Server, reservations *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{
		Handler:      NewHandler(s),
		reservations: reservations,
	}
}

// ListForGuest handles GET /api/v1/users/:id/reservations.
func (h *ReservationHandler) ListForGuest(c echo.Context, req *ListReservationsRequest) (*ReservationsResponse, error) {
	properties, err := h.reservations.ListForGuest(c.Request().Context(), req.GuestID, req.Limit)
	if err != nil {
		return nil, err
	}
	return &ReservationsResponse{Reservations: properties}, nil
}
