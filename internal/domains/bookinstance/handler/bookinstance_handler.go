package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"locallibrary-backend/internal/domains/bookinstance"
	"locallibrary-backend/internal/domains/bookinstance/service"
	"locallibrary-backend/internal/shared/response"
)

const listingPath = "/catalog/bookinstances"

type BookInstanceHandler struct {
	service service.Service
}

func NewBookInstanceHandler(svc service.Service) *BookInstanceHandler {
	return &BookInstanceHandler{service: svc}
}

func formFromRequest(c *gin.Context) bookinstance.BookInstanceForm {
	return bookinstance.BookInstanceForm{
		Book:    c.PostForm("book"),
		Imprint: c.PostForm("imprint"),
		Status:  c.PostForm("status"),
		DueBack: c.PostForm("due_back"),
	}
}

func respondError(c *gin.Context, err error) {
	if bookinstance.ToHTTPStatus(err) == http.StatusNotFound {
		response.NotFound(c, err.Error())
		return
	}
	response.InternalServerError(c, err.Error())
}

// respondDeleteError is the delete-flow variant: a missing candidate sends
// the client back to the listing instead of failing.
func respondDeleteError(c *gin.Context, err error) {
	if bookinstance.ToHTTPStatus(err) == http.StatusNotFound {
		c.Redirect(http.StatusSeeOther, listingPath)
		return
	}
	response.InternalServerError(c, err.Error())
}

// List - GET /catalog/bookinstances
func (h *BookInstanceHandler) List(c *gin.Context) {
	instances, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookinstance_list": instances})
}

// Detail - GET /catalog/bookinstance/:id
func (h *BookInstanceHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid copy id")
		return
	}

	bi, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookinstance": bi})
}

// CreateForm - GET /catalog/bookinstance/create
func (h *BookInstanceHandler) CreateForm(c *gin.Context) {
	books, err := h.service.CreateForm(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"book_list":   books,
		"status_list": bookinstance.Statuses,
	})
}

// Create - POST /catalog/bookinstance/create
func (h *BookInstanceHandler) Create(c *gin.Context) {
	result, err := h.service.Create(c.Request.Context(), formFromRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Invalid != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
			"VALIDATION_FAILED", "Copy form is invalid", result.Invalid)
		return
	}

	c.Redirect(http.StatusSeeOther, result.Instance.URL())
}

// UpdateForm - GET /catalog/bookinstance/:id/update
func (h *BookInstanceHandler) UpdateForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid copy id")
		return
	}

	page, err := h.service.UpdateForm(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bookinstance": page.Instance,
		"book_list":    page.Books,
		"status_list":  bookinstance.Statuses,
	})
}

// Update - POST /catalog/bookinstance/:id/update
func (h *BookInstanceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid copy id")
		return
	}

	result, err := h.service.Update(c.Request.Context(), id, formFromRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}

	if result.Invalid != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
			"VALIDATION_FAILED", "Copy form is invalid", result.Invalid)
		return
	}

	c.Redirect(http.StatusSeeOther, result.Instance.URL())
}

// DeleteForm - GET /catalog/bookinstance/:id/delete
func (h *BookInstanceHandler) DeleteForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, listingPath)
		return
	}

	bi, err := h.service.DeleteView(c.Request.Context(), id)
	if err != nil {
		respondDeleteError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookinstance": bi})
}

// Delete - POST /catalog/bookinstance/:id/delete
// Copies have no dependents, so deletion always goes through.
func (h *BookInstanceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, listingPath)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondDeleteError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, listingPath)
}
