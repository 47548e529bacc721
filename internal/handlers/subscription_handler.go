package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zaferdrn0/Fzy-sub000/internal/audit"
	"github.com/zaferdrn0/Fzy-sub000/internal/httperr"
	"github.com/zaferdrn0/Fzy-sub000/internal/httpresp"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
	ucSubscription "github.com/zaferdrn0/Fzy-sub000/internal/usecase/subscription"
)

type SubscriptionHandler struct {
	db       *gorm.DB
	createUC *ucSubscription.CreateSubscription
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewSubscriptionHandler(
	db *gorm.DB,
	createUC *ucSubscription.CreateSubscription,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		db:       db,
		createUC: createUC,
		audit:    auditDispatcher,
		log:      log,
	}
}

// --------- Requests ---------

type AddSubscriptionRequest struct {
	CustomerID     uint    `json:"customer_id" binding:"required"`
	ServiceID      uint    `json:"service_id" binding:"required"`
	DurationDays   int     `json:"duration_days" binding:"required"`
	StartDate      string  `json:"start_date" binding:"required"`
	SessionLimit   int     `json:"session_limit"`
	MakeupSessions int     `json:"makeup_sessions"`
	Fee            float64 `json:"fee"`
}

type UpdateSubscriptionRequest struct {
	DurationDays   *int     `json:"duration_days"`
	StartDate      *string  `json:"start_date"`
	SessionLimit   *int     `json:"session_limit"`
	MakeupSessions *int     `json:"makeup_sessions"`
	Fee            *float64 `json:"fee"`
}

// --------- Handlers ---------

func (h *SubscriptionHandler) Add(c *gin.Context) {
	var req AddSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeMissingField, err.Error())
		return
	}

	var acting uint
	if id := actingUserID(c); id != nil {
		acting = *id
	}

	sub, err := h.createUC.Execute(c.Request.Context(), ucSubscription.CreateSubscriptionInput{
		CustomerID:     req.CustomerID,
		ServiceID:      req.ServiceID,
		DurationDays:   req.DurationDays,
		StartDate:      req.StartDate,
		SessionLimit:   req.SessionLimit,
		MakeupSessions: req.MakeupSessions,
		Fee:            req.Fee,
		ActingUserID:   acting,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeCustomerNotFound):
			httperr.NotFound(c, httperr.CodeCustomerNotFound, "customer not found")
		case httperr.IsBusiness(err, httperr.CodeServiceNotFound):
			httperr.NotFound(c, httperr.CodeServiceNotFound, "service not found")
		case httperr.IsBusiness(err, httperr.CodeOverlappingSubscription):
			httperr.Conflict(c, httperr.CodeOverlappingSubscription, "customer already has a subscription for this service in that window")
		case httperr.IsBusiness(err, "invalid_start_date"):
			httperr.BadRequest(c, "invalid_start_date", "start_date must be YYYY-MM-DD")
		case httperr.IsBusiness(err, "invalid_duration"):
			httperr.BadRequest(c, "invalid_duration", "duration_days must be positive")
		default:
			h.log.Error("failed to create subscription", zap.Error(err))
			httperr.Internal(c, "internal_error", "failed to create subscription")
		}
		return
	}

	httpresp.Created(c, sub)
}

func (h *SubscriptionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "subscription id must be numeric")
		return
	}

	var sub models.Subscription
	if err := h.db.First(&sub, uint(id)).Error; err != nil {
		httperr.NotFound(c, "subscription_not_found", "subscription not found")
		return
	}

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.DurationDays != nil {
		if *req.DurationDays <= 0 {
			httperr.BadRequest(c, "invalid_duration", "duration_days must be positive")
			return
		}
		sub.DurationDays = *req.DurationDays
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_start_date", "start_date must be YYYY-MM-DD")
			return
		}
		sub.StartDate = start
	}
	if req.SessionLimit != nil {
		sub.SessionLimit = *req.SessionLimit
	}
	if req.MakeupSessions != nil {
		sub.MakeupSessions = *req.MakeupSessions
	}
	if req.Fee != nil {
		sub.Fee = *req.Fee
	}

	if err := h.db.Save(&sub).Error; err != nil {
		h.log.Error("failed to update subscription", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to update subscription")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actingUserID(c),
		Action:   "subscription_updated",
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	httpresp.OK(c, sub)
}

func (h *SubscriptionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "subscription id must be numeric")
		return
	}

	var sub models.Subscription
	if err := h.db.First(&sub, uint(id)).Error; err != nil {
		httperr.NotFound(c, "subscription_not_found", "subscription not found")
		return
	}

	if err := h.db.Delete(&sub).Error; err != nil {
		h.log.Error("failed to delete subscription", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to delete subscription")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   actingUserID(c),
		Action:   "subscription_deleted",
		Entity:   "subscription",
		EntityID: &sub.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
