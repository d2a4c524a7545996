package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// maxCategoryUpload caps category image/video uploads at 100MB
const maxCategoryUpload = 100 << 20

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/api/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/count/total", h.CountCategories)
		categories.GET("/:id", h.GetCategory)
		categories.POST("", middleware.RequireAdmin(), h.CreateCategory)
		categories.PATCH("/:id", middleware.RequireAdmin(), h.UpdateCategory)
		categories.DELETE("/:id", middleware.RequireAdmin(), h.DeleteCategory)
		categories.DELETE("/:id/permanent", middleware.RequireSuperAdmin(), h.HardDeleteCategory)
	}
}

// ListCategories returns all active categories
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, categories))
}

// CountCategories returns the number of active categories
// @Summary      Count categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/categories/count/total [get]
func (h *CategoryHandler) CountCategories(c *gin.Context) {
	total, err := h.categoryService.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"total": total}))
}

// GetCategory returns one category by id, active or not
// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Param        id  path  string  true  "Category ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, category))
}

// CreateCategory creates a category with a required image and optional video
// @Summary      Create category
// @Tags         categories
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name   formData  string  true   "Category name"
// @Param        image  formData  file    true   "Category image"
// @Param        video  formData  file    false  "Category video"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req service.CreateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	image, err := readFile(c, "image", maxCategoryUpload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	video, err := readFile(c, "video", maxCategoryUpload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), currentUserID(c), req, image, video)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, category))
}

// UpdateCategory updates fields and optionally replaces media
// @Summary      Update category
// @Tags         categories
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "Category ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req service.UpdateCategoryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	image, err := readFile(c, "image", maxCategoryUpload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	video, err := readFile(c, "video", maxCategoryUpload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), currentUserID(c), c.Param("id"), req, image, video)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, category))
}

// DeleteCategory soft-deletes a category and releases its media
// @Summary      Delete category
// @Tags         categories
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Category ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	category, err := h.categoryService.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Category deleted successfully", category))
}

// HardDeleteCategory permanently removes a category row
// @Summary      Permanently delete category
// @Tags         categories
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Category ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/categories/{id}/permanent [delete]
func (h *CategoryHandler) HardDeleteCategory(c *gin.Context) {
	category, err := h.categoryService.HardDelete(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Category permanently deleted", category))
}
