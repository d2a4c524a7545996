package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService service.AdminService
	logService   service.LogService
}

func NewAdminHandler(adminService service.AdminService, logService service.LogService) *AdminHandler {
	return &AdminHandler{adminService: adminService, logService: logService}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/api/admin", middleware.RequireAdmin())
	{
		admin.GET("/dashboard/counts", h.Dashboard)
	}

	logs := router.Group("/api/logs", middleware.RequireSuperAdmin())
	{
		logs.GET("", h.ListLogs)
		logs.DELETE("/:id", h.DeleteLog)
	}
}

// Dashboard returns entity counts for the admin landing page
// @Summary      Admin dashboard
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/admin/dashboard/counts [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	counts, err := h.adminService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, counts))
}

// ListLogs returns one page of audit records, newest first
// @Summary      List audit logs
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        page   query  int  false  "Page number (default: 1)"
// @Param        limit  query  int  false  "Items per page (default: 20)"
// @Success      200  {object}  response.Response
// @Router       /api/logs [get]
func (h *AdminHandler) ListLogs(c *gin.Context) {
	params := pagination.Parse(c)

	logs, total, err := h.logService.GetLogs(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"logs":  logs,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	}))
}

// DeleteLog removes one audit record
// @Summary      Delete audit log
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Log ID"
// @Success      200  {object}  response.Response
// @Router       /api/logs/{id} [delete]
func (h *AdminHandler) DeleteLog(c *gin.Context) {
	if err := h.logService.DeleteLog(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Log deleted successfully", nil))
}
