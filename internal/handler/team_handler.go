package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// maxTeamUpload caps team portrait images at 5MB
const maxTeamUpload = 5 << 20

type TeamHandler struct {
	teamService service.TeamService
}

func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

func (h *TeamHandler) RegisterRoutes(router *gin.RouterGroup) {
	team := router.Group("/api/team")
	{
		team.GET("", h.ListMembers)
		team.GET("/count/total", h.CountMembers)
		team.GET("/:id", h.GetMember)
		team.POST("", middleware.RequireAdmin(), h.CreateMember)
		team.PATCH("/:id", middleware.RequireAdmin(), h.UpdateMember)
		team.DELETE("/:id", middleware.RequireAdmin(), h.DeleteMember)
		team.DELETE("/:id/permanent", middleware.RequireSuperAdmin(), h.HardDeleteMember)
	}
}

// ListMembers returns all active team members
// @Summary      List team members
// @Tags         team
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/team [get]
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.teamService.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, members))
}

// CountMembers returns the number of active team members
// @Summary      Count team members
// @Tags         team
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /api/team/count/total [get]
func (h *TeamHandler) CountMembers(c *gin.Context) {
	total, err := h.teamService.Count(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"total": total}))
}

// GetMember returns one team member by id
// @Summary      Get team member
// @Tags         team
// @Produce      json
// @Param        id  path  string  true  "Team member ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/team/{id} [get]
func (h *TeamHandler) GetMember(c *gin.Context) {
	member, err := h.teamService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, member))
}

// CreateMember creates a team member with a required portrait image
// @Summary      Create team member
// @Tags         team
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        name   formData  string  true   "Member name"
// @Param        title  formData  string  false  "Member title"
// @Param        bio    formData  string  false  "Member bio"
// @Param        image  formData  file    true   "Portrait image"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/team [post]
func (h *TeamHandler) CreateMember(c *gin.Context) {
	var req service.CreateTeamMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	image, err := readFile(c, "image", maxTeamUpload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	member, err := h.teamService.Create(c.Request.Context(), currentUserID(c), req, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, member))
}

// UpdateMember updates fields and optionally replaces the portrait
// @Summary      Update team member
// @Tags         team
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  string  true  "Team member ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/team/{id} [patch]
func (h *TeamHandler) UpdateMember(c *gin.Context) {
	var req service.UpdateTeamMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	image, err := readFile(c, "image", maxTeamUpload)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	member, err := h.teamService.Update(c.Request.Context(), currentUserID(c), c.Param("id"), req, image)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, member))
}

// DeleteMember soft-deletes a team member and releases the portrait
// @Summary      Delete team member
// @Tags         team
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Team member ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/team/{id} [delete]
func (h *TeamHandler) DeleteMember(c *gin.Context) {
	member, err := h.teamService.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Team member deleted successfully", member))
}

// HardDeleteMember permanently removes a team member row
// @Summary      Permanently delete team member
// @Tags         team
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Team member ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/team/{id}/permanent [delete]
func (h *TeamHandler) HardDeleteMember(c *gin.Context) {
	member, err := h.teamService.HardDelete(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Team member permanently deleted", member))
}
