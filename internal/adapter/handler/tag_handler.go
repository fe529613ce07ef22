package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/leondli/diary/internal/usecase/tag"
	"github.com/leondli/diary/pkg/response"
)

// TagHandler handles tag requests
type TagHandler struct {
	tagUseCase tag.UseCase
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagUseCase tag.UseCase) *TagHandler {
	return &TagHandler{tagUseCase: tagUseCase}
}

// List godoc
// @Summary List the tag vocabulary
// @Tags tags
// @Produce json
// @Success 200 {array} entity.Tag
// @Failure 500 {object} map[string]string
// @Router /tags [get]
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.tagUseCase.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, tags)
}
