package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) RegisterRoutes(router *gin.RouterGroup) {
	contact := router.Group("/api/contact-us")
	{
		contact.POST("", h.CreateMessage)
		contact.GET("", middleware.RequireAdmin(), h.ListMessages)
		contact.GET("/count/total", middleware.RequireAdmin(), h.CountMessages)
		contact.GET("/:id", middleware.RequireAdmin(), h.GetMessage)
		contact.DELETE("/:id", middleware.RequireAdmin(), h.DeleteMessage)
	}
}

// CreateMessage accepts a public contact-form submission
// @Summary      Submit contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateContactRequest  true  "Contact payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/contact-us [post]
func (h *ContactHandler) CreateMessage(c *gin.Context) {
	var req service.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	msg, err := h.contactService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.SuccessMessage(http.StatusCreated, "Message received", msg))
}

// ListMessages returns all submissions, newest first
// @Summary      List contact messages
// @Tags         contact
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/contact-us [get]
func (h *ContactHandler) ListMessages(c *gin.Context) {
	msgs, err := h.contactService.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, msgs))
}

// CountMessages returns the number of submissions
// @Summary      Count contact messages
// @Tags         contact
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/contact-us/count/total [get]
func (h *ContactHandler) CountMessages(c *gin.Context) {
	total, err := h.contactService.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"total": total}))
}

// GetMessage returns one submission by id
// @Summary      Get contact message
// @Tags         contact
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Message ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/contact-us/{id} [get]
func (h *ContactHandler) GetMessage(c *gin.Context) {
	msg, err := h.contactService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, msg))
}

// DeleteMessage permanently removes a submission
// @Summary      Delete contact message
// @Tags         contact
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Message ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/contact-us/{id} [delete]
func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	msg, err := h.contactService.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Message deleted successfully", msg))
}
