package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	stockService service.StockService
}

func NewStockHandler(stockService service.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

func (h *StockHandler) RegisterRoutes(router *gin.RouterGroup) {
	stocks := router.Group("/api/stocks", middleware.RequireAdmin())
	{
		stocks.GET("", h.ListStocks)
		stocks.GET("/:id", h.GetStock)
		stocks.POST("", h.CreateStock)
		stocks.PATCH("/:id", h.UpdateStock)
		stocks.PATCH("/:id/quantity", h.UpdateStockQuantity)
		stocks.DELETE("/:id", h.DeleteStock)
	}
}

// ListStocks returns stock lines, optionally filtered by type and department
// @Summary      List stocks
// @Tags         stocks
// @Security     BearerAuth
// @Produce      json
// @Param        type          query  string  false  "Filter by type: CHEMICAL, LEATHER"
// @Param        departmentId  query  string  false  "Filter by department"
// @Success      200  {object}  response.Response
// @Router       /api/stocks [get]
func (h *StockHandler) ListStocks(c *gin.Context) {
	filter := repository.StockFilter{
		Type:         c.Query("type"),
		DepartmentID: c.Query("departmentId"),
	}

	stocks, err := h.stockService.FindAll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, stocks))
}

// GetStock returns one stock line by id
// @Summary      Get stock
// @Tags         stocks
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Stock ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/stocks/{id} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	stock, err := h.stockService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, stock))
}

// CreateStock adds a raw-material stock line
// @Summary      Create stock
// @Tags         stocks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body  service.CreateStockRequest  true  "Stock payload"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/stocks [post]
func (h *StockHandler) CreateStock(c *gin.Context) {
	var req service.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	stock, err := h.stockService.Create(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, stock))
}

// UpdateStock updates a stock line
// @Summary      Update stock
// @Tags         stocks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string                      true  "Stock ID"
// @Param        payload  body  service.UpdateStockRequest  true  "Update payload"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/stocks/{id} [patch]
func (h *StockHandler) UpdateStock(c *gin.Context) {
	var req service.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	stock, err := h.stockService.Update(c.Request.Context(), currentUserID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, stock))
}

// UpdateStockQuantity replaces only the quantity of a stock line
// @Summary      Update stock quantity
// @Tags         stocks
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path  string  true  "Stock ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/stocks/{id}/quantity [patch]
func (h *StockHandler) UpdateStockQuantity(c *gin.Context) {
	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	stock, err := h.stockService.UpdateQuantity(c.Request.Context(), currentUserID(c), c.Param("id"), *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, stock))
}

// DeleteStock permanently removes a stock line
// @Summary      Delete stock
// @Tags         stocks
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Stock ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/stocks/{id} [delete]
func (h *StockHandler) DeleteStock(c *gin.Context) {
	stock, err := h.stockService.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Stock deleted successfully", stock))
}
