package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary-backend/internal/domains/catalog/service"
	"locallibrary-backend/internal/shared/response"
)

type CatalogHandler struct {
	service service.Service
}

func NewCatalogHandler(svc service.Service) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Index - GET /catalog
func (h *CatalogHandler) Index(c *gin.Context) {
	counts, err := h.service.Counts(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"title": "Local Library Home",
		"data":  counts,
	})
}
