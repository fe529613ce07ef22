package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leondli/diary/internal/usecase/entry"
	"github.com/leondli/diary/pkg/response"
)

// EntryHandler handles diary entry requests
type EntryHandler struct {
	entryUseCase entry.UseCase
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(entryUseCase entry.UseCase) *EntryHandler {
	return &EntryHandler{entryUseCase: entryUseCase}
}

// List godoc
// @Summary List entries, optionally filtered by tag names
// @Tags entries
// @Produce json
// @Param tags query string false "Comma-joined tag names"
// @Success 200 {array} entity.EntryResponse
// @Failure 500 {object} map[string]string
// @Router /entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	// The query parameter is a comma-joined string, unlike the
	// request-body tags field which is a JSON array
	var tagNames []string
	if raw := c.Query("tags"); raw != "" {
		tagNames = strings.Split(raw, ",")
	}

	entries, err := h.entryUseCase.List(c.Request.Context(), tagNames)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, entries)
}

// GetByID godoc
// @Summary Get a single entry
// @Tags entries
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} entity.EntryResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /entries/{id} [get]
func (h *EntryHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	e, err := h.entryUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, e)
}

// Create godoc
// @Summary Create a new entry
// @Tags entries
// @Accept json
// @Produce json
// @Param request body entry.Input true "Entry input"
// @Success 201 {object} entity.EntryResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /entries [post]
func (h *EntryHandler) Create(c *gin.Context) {
	var input entry.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "missing or invalid fields")
		return
	}

	e, err := h.entryUseCase.Create(c.Request.Context(), &input)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Created(c, e)
}

// Update godoc
// @Summary Update an entry, replacing its tag set
// @Tags entries
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param request body entry.Input true "Entry input"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /entries/{id} [put]
func (h *EntryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input entry.Input
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "missing or invalid fields")
		return
	}

	e, err := h.entryUseCase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, gin.H{
		"message": "Entry Updated",
		"entry":   e,
	})
}

// Delete godoc
// @Summary Delete an entry and its tag associations
// @Tags entries
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /entries/{id} [delete]
func (h *EntryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.entryUseCase.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "Entry Deleted"})
}

// parseID reads the :id path parameter, responding 400 on junk input
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid entry ID")
		return 0, false
	}
	return id, true
}
