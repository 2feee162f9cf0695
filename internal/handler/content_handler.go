package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/guardianpro/guardianpro-api/internal/repository"
	"github.com/guardianpro/guardianpro-api/internal/service"
	"github.com/guardianpro/guardianpro-api/internal/utils"
)

// ContentHandler handles the content-management CRUD endpoints. The entity
// name is a path segment (services, news, faqs); unknown entities get 404.
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler constructs a ContentHandler.
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

type updateServiceRequest struct {
	ID string `json:"id" binding:"required"`
	repository.ServiceUpdate
}

type updateNewsRequest struct {
	ID string `json:"id" binding:"required"`
	repository.NewsUpdate
}

type updateFAQRequest struct {
	ID string `json:"id" binding:"required"`
	repository.FAQUpdate
}

// List handles GET /content-management/:entity/list
func (h *ContentHandler) List(c *gin.Context) {
	switch c.Param("entity") {
	case "services":
		items, err := h.contentService.ListServices()
		if err != nil {
			h.handleError(c, err)
			return
		}
		utils.Success(c, 200, "Services retrieved", items)
	case "news":
		items, err := h.contentService.ListNews()
		if err != nil {
			h.handleError(c, err)
			return
		}
		utils.Success(c, 200, "News posts retrieved", items)
	case "faqs":
		items, err := h.contentService.ListFAQs()
		if err != nil {
			h.handleError(c, err)
			return
		}
		utils.Success(c, 200, "FAQs retrieved", items)
	default:
		utils.Error(c, 404, "ENTITY_NOT_FOUND", "Unknown entity")
	}
}

// Create handles POST /content-management/:entity/create
func (h *ContentHandler) Create(c *gin.Context) {
	adminID := c.GetString("admin_id")

	switch c.Param("entity") {
	case "services":
		var req service.CreateServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, 400, "MISSING_FIELD", "Invalid request body")
			return
		}
		item, err := h.contentService.CreateService(&req, adminID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		utils.Success(c, 201, "Service created", item)
	case "news":
		var req service.CreateNewsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, 400, "MISSING_FIELD", "Invalid request body")
			return
		}
		item, err := h.contentService.CreateNews(&req, adminID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		utils.Success(c, 201, "News post created", item)
	case "faqs":
		var req service.CreateFAQRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, 400, "MISSING_FIELD", "Invalid request body")
			return
		}
		item, err := h.contentService.CreateFAQ(&req, adminID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		utils.Success(c, 201, "FAQ created", item)
	default:
		utils.Error(c, 404, "ENTITY_NOT_FOUND", "Unknown entity")
	}
}

// Update handles PUT /content-management/:entity/update
func (h *ContentHandler) Update(c *gin.Context) {
	adminID := c.GetString("admin_id")

	switch c.Param("entity") {
	case "services":
		var req updateServiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, 400, "MISSING_FIELD", "id is required")
			return
		}
		item, err := h.contentService.UpdateService(req.ID, &req.ServiceUpdate, adminID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		utils.Success(c, 200, "Service updated", item)
	case "news":
		var req updateNewsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, 400, "MISSING_FIELD", "id is required")
			return
		}
		item, err := h.contentService.UpdateNews(req.ID, &req.NewsUpdate, adminID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		utils.Success(c, 200, "News post updated", item)
	case "faqs":
		var req updateFAQRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.Error(c, 400, "MISSING_FIELD", "id is required")
			return
		}
		item, err := h.contentService.UpdateFAQ(req.ID, &req.FAQUpdate, adminID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		utils.Success(c, 200, "FAQ updated", item)
	default:
		utils.Error(c, 404, "ENTITY_NOT_FOUND", "Unknown entity")
	}
}

// Delete handles DELETE /content-management/:entity/delete?id=
func (h *ContentHandler) Delete(c *gin.Context) {
	adminID := c.GetString("admin_id")

	id := c.Query("id")
	if id == "" {
		utils.Error(c, 400, "MISSING_FIELD", "id is required")
		return
	}

	var err error
	switch c.Param("entity") {
	case "services":
		err = h.contentService.DeleteService(id, adminID)
	case "news":
		err = h.contentService.DeleteNews(id, adminID)
	case "faqs":
		err = h.contentService.DeleteFAQ(id, adminID)
	default:
		utils.Error(c, 404, "ENTITY_NOT_FOUND", "Unknown entity")
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.Success(c, 200, "Deleted", gin.H{"id": id})
}

func (h *ContentHandler) handleError(c *gin.Context, err error) {
	switch err {
	case utils.ErrRecordNotFound:
		utils.Error(c, 404, "RECORD_NOT_FOUND", "Record not found")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Internal server error")
	}
}
