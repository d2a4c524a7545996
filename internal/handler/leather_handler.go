package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// maxLeatherUpload caps each leather media file at 100MB
const maxLeatherUpload = 100 << 20

type LeatherHandler struct {
	leatherService service.LeatherService
}

func NewLeatherHandler(leatherService service.LeatherService) *LeatherHandler {
	return &LeatherHandler{leatherService: leatherService}
}

func (h *LeatherHandler) RegisterRoutes(router *gin.RouterGroup) {
	leathers := router.Group("/api/leathers")
	{
		leathers.GET("", h.ListLeathers)
		leathers.GET("/count/total", h.CountLeathers)
		leathers.GET("/category/:category", h.ListByCategory)
		leathers.GET("/:id", h.GetLeather)
		leathers.POST("", middleware.RequireAdmin(), h.CreateLeather)
		leathers.PATCH("/:id", middleware.RequireAdmin(), h.UpdateLeather)
		leathers.DELETE("/:id", middleware.RequireAdmin(), h.DeleteLeather)
	}
}

// ListLeathers returns the whole catalog
// @Summary      List leathers
// @Tags         leathers
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/leathers [get]
func (h *LeatherHandler) ListLeathers(c *gin.Context) {
	leathers, err := h.leatherService.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, leathers))
}

// CountLeathers returns the number of catalog items
// @Summary      Count leathers
// @Tags         leathers
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/leathers/count/total [get]
func (h *LeatherHandler) CountLeathers(c *gin.Context) {
	total, err := h.leatherService.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"total": total}))
}

// ListByCategory returns the catalog filtered by category name
// @Summary      List leathers by category
// @Tags         leathers
// @Produce      json
// @Param        category  path  string  true  "Category name"
// @Success      200  {object}  response.Response
// @Router       /api/leathers/category/{category} [get]
func (h *LeatherHandler) ListByCategory(c *gin.Context) {
	leathers, err := h.leatherService.FindByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, leathers))
}

// GetLeather returns one catalog item by id
// @Summary      Get leather
// @Tags         leathers
// @Produce      json
// @Param        id  path  string  true  "Leather ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/leathers/{id} [get]
func (h *LeatherHandler) GetLeather(c *gin.Context) {
	leather, err := h.leatherService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, leather))
}

// CreateLeather creates a catalog item. The first image becomes the main
// image, the rest become variants in upload order; same for videos.
// @Summary      Create leather
// @Tags         leathers
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name      formData  string  true   "Leather name"
// @Param        category  formData  string  true   "Category name"
// @Param        images    formData  file    true   "Images (first is main)"
// @Param        videos    formData  file    false  "Videos (first is main)"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/leathers [post]
func (h *LeatherHandler) CreateLeather(c *gin.Context) {
	var req service.CreateLeatherRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	images, err := readFiles(c, "images", maxLeatherUpload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	videos, err := readFiles(c, "videos", maxLeatherUpload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	leather, err := h.leatherService.Create(c.Request.Context(), currentUserID(c), req, images, videos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, leather))
}

// UpdateLeather updates fields; new images/videos replace the whole
// section they belong to
// @Summary      Update leather
// @Tags         leathers
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "Leather ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/leathers/{id} [patch]
func (h *LeatherHandler) UpdateLeather(c *gin.Context) {
	var req service.UpdateLeatherRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	images, err := readFiles(c, "images", maxLeatherUpload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	videos, err := readFiles(c, "videos", maxLeatherUpload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	leather, err := h.leatherService.Update(c.Request.Context(), currentUserID(c), c.Param("id"), req, images, videos)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, leather))
}

// DeleteLeather removes a catalog item and releases all its media
// @Summary      Delete leather
// @Tags         leathers
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Leather ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/leathers/{id} [delete]
func (h *LeatherHandler) DeleteLeather(c *gin.Context) {
	leather, err := h.leatherService.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Leather deleted successfully", leather))
}
