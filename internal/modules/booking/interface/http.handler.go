package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cachetteWeb/internal/modules/booking/application/port"
	"cachetteWeb/internal/modules/booking/application/usecase"
	"cachetteWeb/internal/modules/booking/domain"
	sessiontransport "cachetteWeb/internal/modules/session/interface"
	"cachetteWeb/internal/shared/httputil"
)

const isoDate = "2006-01-02"

type availabilityRequest struct {
	Room         string `json:"room"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

type availabilityResponse struct {
	Room         string               `json:"room"`
	Available    bool                 `json:"available"`
	CheckInDate  string               `json:"checkInDate"`
	CheckOutDate string               `json:"checkOutDate"`
	Conflicts    []domain.Reservation `json:"conflicts,omitempty"`
}

type submitRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Room         string `json:"room"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	GuestCount   int    `json:"guestCount"`
	Message      string `json:"message"`
}

type submitResponse struct {
	Reservation domain.Reservation `json:"reservation"`
	Nights      int                `json:"nights"`
	TotalPrice  float64            `json:"totalPrice"`
}

type reservationView struct {
	domain.Reservation
	StatusLabel string `json:"statusLabel"`
	Nights      int    `json:"nights"`
}

type listResponse struct {
	Reservations []reservationView `json:"reservations"`
	Count        int               `json:"count"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

// Handler exposes the booking JSON surface: availability, submission, the
// customer's history and the admin console actions.
type Handler struct {
	Availability *usecase.CheckAvailabilityUseCase
	Submit       *usecase.SubmitReservationUseCase
	Mine         *usecase.ListMyReservationsUseCase
	All          *usecase.ListAllReservationsUseCase
	Stats        *usecase.ReservationStatsUseCase
	Confirm      *usecase.ConfirmReservationUseCase
	Cancel       *usecase.CancelReservationUseCase
	Identity     port.IdentityProvider
	mapper       *httputil.ErrorMapper
}

func NewHandler(
	availability *usecase.CheckAvailabilityUseCase,
	submit *usecase.SubmitReservationUseCase,
	mine *usecase.ListMyReservationsUseCase,
	all *usecase.ListAllReservationsUseCase,
	stats *usecase.ReservationStatsUseCase,
	confirm *usecase.ConfirmReservationUseCase,
	cancel *usecase.CancelReservationUseCase,
	identity port.IdentityProvider,
) *Handler {
	mapper := httputil.NewErrorMapper().
		WithMapping(domain.ErrMissingFields, http.StatusBadRequest, "all required fields must be filled in").
		WithMapping(domain.ErrDateOrder, http.StatusBadRequest, "check-out must be after check-in").
		WithMapping(domain.ErrUnknownRoom, http.StatusBadRequest, "unknown room").
		WithMapping(domain.ErrGuestCount, http.StatusBadRequest, "guest count must be at least 1").
		WithMapping(usecase.ErrDatesBlocked, http.StatusConflict, "these dates are no longer available").
		WithMapping(usecase.ErrMissingReservationID, http.StatusBadRequest, "missing reservation id").
		WithMapping(port.ErrConflict, http.StatusConflict, "these dates were just booked by someone else").
		WithMapping(port.ErrInvalidData, http.StatusBadRequest, "the reservation was rejected").
		WithMapping(port.ErrAvailabilityUnknown, http.StatusBadGateway, "availability could not be verified, please retry").
		WithMapping(port.ErrNotAuthenticated, http.StatusUnauthorized, "please log in first").
		WithMapping(port.ErrForbidden, http.StatusForbidden, "admin access required").
		WithMapping(port.ErrBackend, http.StatusBadGateway, "reservation service unavailable, please retry").
		WithDefault(http.StatusInternalServerError, "internal server error")
	return &Handler{
		Availability: availability,
		Submit:       submit,
		Mine:         mine,
		All:          all,
		Stats:        stats,
		Confirm:      confirm,
		Cancel:       cancel,
		Identity:     identity,
		mapper:       mapper,
	}
}

// RegisterRoutes mounts the customer endpoints on g and the admin console
// endpoints on admin.
func (h *Handler) RegisterRoutes(g, admin *echo.Group) {
	g.POST("/availability", h.handleAvailability)
	g.POST("/reservations", h.handleSubmit)
	g.GET("/reservations", h.handleMine)

	admin.GET("/reservations", h.handleAll)
	admin.GET("/stats", h.handleStats)
	admin.POST("/reservations/:id/confirm", h.handleConfirm)
	admin.POST("/reservations/:id/cancel", h.handleCancel)
}

func (h *Handler) handleAvailability(c echo.Context) error {
	var req availabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed availability payload")
	}
	checkIn, checkOut, err := parseWindow(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "dates must use the YYYY-MM-DD format")
	}

	// The page is public; a logged-in visitor's token is passed along in
	// case the backend gates the route, an anonymous one checks bare.
	token := ""
	if caller, callerErr := h.Identity.RequireCaller(c.Request().Context(), sessiontransport.SessionID(c)); callerErr == nil {
		token = caller.Token
	}

	output, err := h.Availability.Execute(c.Request().Context(), usecase.CheckAvailabilityInput{
		Token:    token,
		RoomKey:  req.Room,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	})
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(http.StatusOK, availabilityResponse{
		Room:         output.Room.Key,
		Available:    output.IsAvailable,
		CheckInDate:  output.CheckInDate,
		CheckOutDate: output.CheckOutDate,
		Conflicts:    output.Conflicts,
	})
}

func (h *Handler) handleSubmit(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed reservation payload")
	}
	checkIn, checkOut, err := parseWindow(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "dates must use the YYYY-MM-DD format")
	}

	output, err := h.Submit.Execute(c.Request().Context(), usecase.SubmitReservationInput{
		SessionID: sessiontransport.SessionID(c),
		Draft: domain.ReservationDraft{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Email:      req.Email,
			Phone:      req.Phone,
			RoomKey:    req.Room,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			GuestCount: req.GuestCount,
			Message:    req.Message,
		},
	})
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(http.StatusCreated, submitResponse{
		Reservation: output.Reservation,
		Nights:      output.Nights,
		TotalPrice:  output.TotalPrice,
	})
}

func (h *Handler) handleMine(c echo.Context) error {
	filter := domain.NormalizeReservationFilter(c.QueryParam("filter"))
	items, err := h.Mine.Execute(c.Request().Context(), usecase.ListMyReservationsInput{
		SessionID: sessiontransport.SessionID(c),
		Filter:    filter,
	})
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(http.StatusOK, buildListResponse(items))
}

func (h *Handler) handleAll(c echo.Context) error {
	items, err := h.All.Execute(c.Request().Context(), sessiontransport.SessionID(c))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(http.StatusOK, buildListResponse(items))
}

func (h *Handler) handleStats(c echo.Context) error {
	stats, err := h.Stats.Execute(c.Request().Context(), sessiontransport.SessionID(c))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) handleConfirm(c echo.Context) error {
	updated, err := h.Confirm.Execute(c.Request().Context(), sessiontransport.SessionID(c), c.Param("id"))
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(http.StatusOK, viewOf(updated))
}

func (h *Handler) handleCancel(c echo.Context) error {
	var req cancelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed cancel payload")
	}
	updated, err := h.Cancel.Execute(c.Request().Context(), sessiontransport.SessionID(c), c.Param("id"), req.Reason)
	if err != nil {
		return h.renderError(c, err)
	}
	return c.JSON(http.StatusOK, viewOf(updated))
}

func (h *Handler) renderError(c echo.Context, err error) error {
	info := h.mapper.Map(err)
	if info.Status >= http.StatusInternalServerError {
		slog.Error("booking handler error", slog.Any("error", err))
	}
	return echo.NewHTTPError(info.Status, info.Message)
}

func parseWindow(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(isoDate, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := time.Parse(isoDate, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return in, out, nil
}

func viewOf(r domain.Reservation) reservationView {
	return reservationView{
		Reservation: r,
		StatusLabel: r.Status.DisplayLabel(),
		Nights:      r.Nights(),
	}
}

func buildListResponse(items []domain.Reservation) listResponse {
	views := make([]reservationView, 0, len(items))
	for _, item := range items {
		views = append(views, viewOf(item))
	}
	return listResponse{Reservations: views, Count: len(views)}
}
