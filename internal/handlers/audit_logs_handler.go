package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zaferdrn0/Fzy-sub000/internal/httperr"
	"github.com/zaferdrn0/Fzy-sub000/internal/httpresp"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

type AuditLogsHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewAuditLogsHandler(db *gorm.DB, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, log: log}
}

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 200
)

func (h *AuditLogsHandler) List(c *gin.Context) {
	limit := defaultAuditPageSize
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}

	offset := 0
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	q := h.db.Model(&models.AuditLog{})
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {
		h.log.Error("failed to list audit logs", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to list audit logs")
		return
	}

	httpresp.List(c, logs)
}
