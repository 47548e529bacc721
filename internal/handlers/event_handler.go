package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zaferdrn0/Fzy-sub000/internal/audit"
	domain "github.com/zaferdrn0/Fzy-sub000/internal/domain/appointment"
	"github.com/zaferdrn0/Fzy-sub000/internal/httperr"
	"github.com/zaferdrn0/Fzy-sub000/internal/httpresp"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

// EventHandler serves the legacy calendar entity. The service is
// addressed by type string ("Pilates" etc.), not by id, and statuses
// use the old English vocabulary.
type EventHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewEventHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher, log *zap.Logger) *EventHandler {
	return &EventHandler{db: db, audit: auditDispatcher, log: log}
}

type AddEventRequest struct {
	Date    string `json:"date" binding:"required"`
	Status  string `json:"status" binding:"required"`
	Notes   string `json:"notes"`
	Service string `json:"service" binding:"required"`
}

func (h *EventHandler) Add(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Param("customerId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "customer id must be numeric")
		return
	}

	var req AddEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, err.Error())
		return
	}

	if !domain.IsValidEventStatus(domain.EventStatus(req.Status)) {
		httperr.BadRequest(c, "invalid_status", "status must be scheduled, attended or missed")
		return
	}

	date, err := parseDateTime(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date could not be parsed")
		return
	}

	var customer models.Customer
	if err := h.db.First(&customer, uint(customerID)).Error; err != nil {
		httperr.NotFound(c, httperr.CodeCustomerNotFound, "customer not found")
		return
	}

	var service models.Service
	if err := h.db.Where("type = ?", req.Service).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeServiceNotFound, "service not found")
			return
		}
		h.log.Error("failed to resolve service", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to create event")
		return
	}

	event := models.Event{
		CustomerID: customer.ID,
		ServiceID:  service.ID,
		Date:       date,
		Status:     req.Status,
		Notes:      req.Notes,
	}

	if err := h.db.Create(&event).Error; err != nil {
		h.log.Error("failed to create event", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to create event")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actingUserID(c),
		Action:   "event_created",
		Entity:   "event",
		EntityID: &event.ID,
	})

	httpresp.Created(c, event)
}
