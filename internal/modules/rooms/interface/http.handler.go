package transport

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cachetteWeb/internal/modules/rooms/application/usecase"
	"cachetteWeb/internal/modules/rooms/domain"
)

type roomsResponse struct {
	Rooms []domain.RoomRecord `json:"rooms"`
	Count int                 `json:"count"`
}

// Handler serves the room browsing endpoint. It never fails the page:
// the use case falls back to the fixed catalog when the backend is down.
type Handler struct {
	List *usecase.ListRoomsUseCase
}

func NewHandler(list *usecase.ListRoomsUseCase) *Handler {
	return &Handler{List: list}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/rooms", h.handleList)
}

func (h *Handler) handleList(c echo.Context) error {
	input := usecase.ListRoomsInput{}
	if from := c.QueryParam("checkInDate"); from != "" {
		if parsed, err := time.Parse("2006-01-02", from); err == nil {
			input.CheckIn = parsed
		}
	}
	if to := c.QueryParam("checkOutDate"); to != "" {
		if parsed, err := time.Parse("2006-01-02", to); err == nil {
			input.CheckOut = parsed
		}
	}

	rooms, err := h.List.Execute(c.Request().Context(), input)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "room inventory unavailable")
	}
	return c.JSON(http.StatusOK, roomsResponse{Rooms: rooms, Count: len(rooms)})
}
