package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// maxTestimonialUpload caps testimonial images at 5MB
const maxTestimonialUpload = 5 << 20

type TestimonialHandler struct {
	testimonialService service.TestimonialService
}

func NewTestimonialHandler(testimonialService service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

func (h *TestimonialHandler) RegisterRoutes(router *gin.RouterGroup) {
	testimonials := router.Group("/api/testimonials")
	{
		testimonials.GET("", h.ListTestimonials)
		testimonials.GET("/count/total", h.CountTestimonials)
		testimonials.GET("/:id", h.GetTestimonial)
		testimonials.POST("", middleware.RequireAdmin(), h.CreateTestimonial)
		testimonials.PATCH("/:id", middleware.RequireAdmin(), h.UpdateTestimonial)
		testimonials.DELETE("/:id", middleware.RequireAdmin(), h.DeleteTestimonial)
		testimonials.DELETE("/:id/permanent", middleware.RequireSuperAdmin(), h.HardDeleteTestimonial)
	}
}

// ListTestimonials returns all active testimonials
// @Summary      List testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/testimonials [get]
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.testimonialService.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, testimonials))
}

// CountTestimonials returns the number of active testimonials
// @Summary      Count testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/testimonials/count/total [get]
func (h *TestimonialHandler) CountTestimonials(c *gin.Context) {
	total, err := h.testimonialService.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"total": total}))
}

// GetTestimonial returns one testimonial by id
// @Summary      Get testimonial
// @Tags         testimonials
// @Produce      json
// @Param        id  path  string  true  "Testimonial ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/testimonials/{id} [get]
func (h *TestimonialHandler) GetTestimonial(c *gin.Context) {
	testimonial, err := h.testimonialService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, testimonial))
}

// CreateTestimonial creates a testimonial with a required client image
// @Summary      Create testimonial
// @Tags         testimonials
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        clientName  formData  string  true  "Client name"
// @Param        message     formData  string  true  "Testimonial message"
// @Param        country     formData  string  true  "Client country"
// @Param        image       formData  file    true  "Client image"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/testimonials [post]
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req service.CreateTestimonialRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	image, err := readFile(c, "image", maxTestimonialUpload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	testimonial, err := h.testimonialService.Create(c.Request.Context(), currentUserID(c), req, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, testimonial))
}

// UpdateTestimonial updates fields and optionally replaces the image
// @Summary      Update testimonial
// @Tags         testimonials
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "Testimonial ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/testimonials/{id} [patch]
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	var req service.UpdateTestimonialRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	image, err := readFile(c, "image", maxTestimonialUpload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	testimonial, err := h.testimonialService.Update(c.Request.Context(), currentUserID(c), c.Param("id"), req, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, testimonial))
}

// DeleteTestimonial soft-deletes a testimonial and releases its image
// @Summary      Delete testimonial
// @Tags         testimonials
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Testimonial ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/testimonials/{id} [delete]
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	testimonial, err := h.testimonialService.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Testimonial deleted successfully", testimonial))
}

// HardDeleteTestimonial permanently removes a testimonial row
// @Summary      Permanently delete testimonial
// @Tags         testimonials
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Testimonial ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/testimonials/{id}/permanent [delete]
func (h *TestimonialHandler) HardDeleteTestimonial(c *gin.Context) {
	testimonial, err := h.testimonialService.HardDelete(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Testimonial permanently deleted", testimonial))
}
