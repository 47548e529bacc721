package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zaferdrn0/Fzy-sub000/internal/httperr"
	"github.com/zaferdrn0/Fzy-sub000/internal/httpresp"
	"github.com/zaferdrn0/Fzy-sub000/internal/models"
)

type ServiceHandler struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewServiceHandler(db *gorm.DB, log *zap.Logger) *ServiceHandler {
	return &ServiceHandler{db: db, log: log}
}

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		h.log.Error("failed to list services", zap.Error(err))
		httperr.Internal(c, "internal_error", "failed to list services")
		return
	}

	httpresp.OK(c, services)
}
