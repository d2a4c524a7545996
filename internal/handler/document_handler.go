package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentService service.DocumentService
}

func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

func (h *DocumentHandler) RegisterRoutes(router *gin.RouterGroup) {
	documents := router.Group("/api/documents", middleware.RequireAdmin())
	{
		documents.GET("", h.SearchDocuments)
		documents.GET("/:id", h.GetDocument)
		documents.POST("", h.UploadDocument)
		documents.POST("/bulk", h.BulkUpload)
		documents.DELETE("/:id", h.DeleteDocument)
		documents.DELETE("/folder/:folder", middleware.RequireSuperAdmin(), h.DeleteFolder)
	}
}

// SearchDocuments lists one page of documents with optional title filter
// @Summary      Search documents
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        page   query  int     false  "Page number (default: 1)"
// @Param        limit  query  int     false  "Items per page (default: 20, max: 100)"
// @Param        q      query  string  false  "Title substring filter"
// @Param        sort   query  string  false  "Sort column: uploaded_at, title, size"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/documents [get]
func (h *DocumentHandler) SearchDocuments(c *gin.Context) {
	params, err := pagination.ParseStrict(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	docs, total, err := h.documentService.Search(c.Request.Context(), service.DocumentSearchParams{
		Query:  c.Query("q"),
		Sort:   c.Query("sort"),
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"documents": docs,
		"total":     total,
		"page":      params.Page,
		"limit":     params.Limit,
	}))
}

// GetDocument returns one document record by id
// @Summary      Get document
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Document ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.documentService.FindOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// UploadDocument stores one business document and tags it
// @Summary      Upload document
// @Tags         documents
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file    formData  file    true   "Document file (pdf, doc, docx, jpeg, png; max 20MB)"
// @Param        title   formData  string  false  "Document title"
// @Param        folder  formData  string  false  "Target folder"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/documents [post]
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	var req service.UploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	file, err := readFile(c, "file", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	if file == nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "file is required"))
		return
	}

	doc, err := h.documentService.Upload(c.Request.Context(), currentUserID(c), req, *file)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, doc))
}

// BulkUpload stores many documents at once and reports per-file outcomes
// @Summary      Bulk upload documents
// @Tags         documents
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        files   formData  file    true   "Document files"
// @Param        folder  formData  string  false  "Target folder"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /api/documents/bulk [post]
func (h *DocumentHandler) BulkUpload(c *gin.Context) {
	files, err := readFiles(c, "files", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	result, err := h.documentService.BulkUpload(c.Request.Context(), currentUserID(c), c.PostForm("folder"), files)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// DeleteDocument removes one document and its stored file
// @Summary      Delete document
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "Document ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	doc, err := h.documentService.Remove(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Document deleted successfully", doc))
}

// DeleteFolder removes every document in a folder
// @Summary      Delete document folder
// @Tags         documents
// @Security     BearerAuth
// @Produce      json
// @Param        folder  path  string  true  "Folder name"
// @Success      200  {object}  response.Response
// @Router       /api/documents/folder/{folder} [delete]
func (h *DocumentHandler) DeleteFolder(c *gin.Context) {
	removed, err := h.documentService.RemoveFolder(c.Request.Context(), currentUserID(c), c.Param("folder"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"removed": removed}))
}
