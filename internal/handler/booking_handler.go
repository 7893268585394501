package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deExistent98/clinic-booking/internal/model"
	"github.com/deExistent98/clinic-booking/internal/service"
)

// Сообщения для фронтенда — те же, что показывает интерфейс клиники.
const (
	msgUserOrDoctorNotFound = "Utente o medico non trovato."
	msgSlotTaken            = "Il medico ha già una prenotazione per questa data e ora."
)

type BookingHandler struct {
	svc *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func RegisterBookingRoutes(api *gin.RouterGroup, h *BookingHandler) {
	api.GET("/bookings", h.List)
	api.GET("/bookings/:id", h.Get)
	api.GET("/bookings/:id/events", h.ListEvents)
	api.GET("/bookings/user/:userId", h.ListByUser)
	api.POST("/bookings", h.Create)
	api.PUT("/bookings/:id", h.Update)
	api.PUT("/bookings/:id/status", h.UpdateStatus)
	api.DELETE("/bookings/:id", h.Delete)
}

type entityRef struct {
	ID uint `json:"id" binding:"required"`
}

type createBookingRequest struct {
	User     entityRef `json:"user" binding:"required"`
	Doctor   entityRef `json:"doctor" binding:"required"`
	Date     string    `json:"date" binding:"required"`
	TimeSlot string    `json:"timeSlot" binding:"required"`
	Status   string    `json:"status"`
	Notes    string    `json:"notes"`
}

type updateBookingRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

// bookingResponse — JSON-представление бронирования: дата уходит
// наружу строкой YYYY-MM-DD, пациент и врач — вложенными объектами.
type bookingResponse struct {
	ID       uint          `json:"id"`
	User     *model.User   `json:"user"`
	Doctor   *model.Doctor `json:"doctor"`
	Date     string        `json:"date"`
	TimeSlot string        `json:"timeSlot"`
	Status   string        `json:"status"`
	Notes    string        `json:"notes"`
}

func toBookingResponse(b *model.Booking) bookingResponse {
	return bookingResponse{
		ID:       b.ID,
		User:     b.User,
		Doctor:   b.Doctor,
		Date:     model.FormatDate(b.Date),
		TimeSlot: b.TimeSlot,
		Status:   b.Status,
		Notes:    b.Notes,
	}
}

func toBookingResponses(bookings []model.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondList(c, toBookingResponses(bookings))
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	b, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) ListByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	bookings, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// ListEvents отдаёт журнал бронирования, новые записи первыми.
func (h *BookingHandler) ListEvents(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	events, err := h.svc.ListEvents(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	booking := &model.Booking{
		UserID:   req.User.ID,
		DoctorID: req.Doctor.ID,
		Date:     date,
		TimeSlot: req.TimeSlot,
		Status:   req.Status,
		Notes:    req.Notes,
	}

	created, err := h.svc.Create(c.Request.Context(), booking)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(created))
}

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, date, req.TimeSlot, req.Status, req.Notes)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(updated))
}

// UpdateStatus принимает новый статус сырой строкой в теле запроса.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read request body"})
		return
	}

	updated, err := h.svc.UpdateStatus(c.Request.Context(), id, string(raw))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(updated))
}

func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// fail переводит доменные ошибки в коды ответов:
// отсутствующее бронирование — 404 с пустым телом, нарушение правил
// создания — 400 с сообщением, всё остальное — 500.
func (h *BookingHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrDoctorNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgUserOrDoctorNotFound})
	case errors.Is(err, service.ErrSlotTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": msgSlotTaken})
	default:
		log.Printf("booking handler: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
