package handlers

import (
	"net/http"

	"fixly/models"
	"fixly/services/handyman"
	"fixly/services/search"
	"fixly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandymanHandler exposes profile, skills, availability and search endpoints.
type HandymanHandler struct {
	HandymanService handyman.HandymanService
	SearchService   search.SearchService
}

// RegisterHandymanHandler handles POST /api/handymen/register. The owning
// user comes from the auth middleware, never the payload.
func (h *HandymanHandler) RegisterHandymanHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString("userID")

	var req handyman.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	profile, err := h.HandymanService.Register(userID, req)
	if err != nil {
		logger.Error("Handyman registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// GetHandymanByIDHandler handles GET /api/handymen/id/:id.
func (h *HandymanHandler) GetHandymanByIDHandler(c *gin.Context) {
	profile, err := h.HandymanService.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateHandymanHandler handles PATCH /api/handymen/update/:id.
func (h *HandymanHandler) UpdateHandymanHandler(c *gin.Context) {
	id := c.Param("id")
	if c.GetString("handymanID") != id {
		utils.JSONError(c, http.StatusForbidden, "Cannot modify another handyman's profile", "")
		return
	}

	var updates handyman.ProfileUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	profile, err := h.HandymanService.Update(id, updates)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteHandymanHandler handles DELETE /api/handymen/delete/:id.
func (h *HandymanHandler) DeleteHandymanHandler(c *gin.Context) {
	id := c.Param("id")
	if c.GetString("handymanID") != id {
		utils.JSONError(c, http.StatusForbidden, "Cannot delete another handyman's profile", "")
		return
	}
	if err := h.HandymanService.Delete(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Handyman profile deleted"})
}

// SearchHandymenHandler handles POST /api/handymen/search.
func (h *HandymanHandler) SearchHandymenHandler(c *gin.Context) {
	var filters search.Filters
	if err := c.ShouldBindJSON(&filters); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid search filters", err.Error())
		return
	}

	result, err := h.SearchService.Search(filters)
	if err != nil {
		utils.GetLogger().Error("Search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Search failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// VocabularyHandler handles GET /api/handymen/vocabulary.
func (h *HandymanHandler) VocabularyHandler(c *gin.Context) {
	vocab, err := h.SearchService.Vocabulary()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load vocabulary", err.Error())
		return
	}
	c.JSON(http.StatusOK, vocab)
}

// UpdateAvailabilityHandler handles PUT /api/handymen/:id/availability.
func (h *HandymanHandler) UpdateAvailabilityHandler(c *gin.Context) {
	id := c.Param("id")
	if c.GetString("handymanID") != id {
		utils.JSONError(c, http.StatusForbidden, "Cannot modify another handyman's availability", "")
		return
	}

	var av models.Availability
	if err := c.ShouldBindJSON(&av); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability payload", err.Error())
		return
	}

	profile, warnings, err := h.HandymanService.UpdateAvailability(id, av)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile, "warnings": warnings})
}

// AddSkillHandler handles POST /api/handymen/:id/skills.
func (h *HandymanHandler) AddSkillHandler(c *gin.Context) {
	id := c.Param("id")
	if c.GetString("handymanID") != id {
		utils.JSONError(c, http.StatusForbidden, "Cannot modify another handyman's skills", "")
		return
	}

	var skill models.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid skill payload", err.Error())
		return
	}

	profile, err := h.HandymanService.AddSkill(id, skill)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveSkillHandler handles DELETE /api/handymen/:id/skills/:name.
func (h *HandymanHandler) RemoveSkillHandler(c *gin.Context) {
	id := c.Param("id")
	if c.GetString("handymanID") != id {
		utils.JSONError(c, http.StatusForbidden, "Cannot modify another handyman's skills", "")
		return
	}

	profile, err := h.HandymanService.RemoveSkill(id, c.Param("name"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SlotsHandler handles GET /api/handymen/:id/slots?date=YYYY-MM-DD.
func (h *HandymanHandler) SlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Query parameter 'date' is required", "")
		return
	}

	slots, err := h.HandymanService.SlotsForDate(c.Param("id"), date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
