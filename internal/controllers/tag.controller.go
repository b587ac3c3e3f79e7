package controllers

import (
	"net/http"

	"foodgram/internal/models"
	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
)

type TagController struct {
	repo repository.TagRepository
}

func NewTagController(repo repository.TagRepository) *TagController {
	return &TagController{repo: repo}
}

// ListTags godoc
// @Summary List tags
// @Description All tags, unpaginated
// @Tags tags
// @Produce json
// @Success 200 {object} map[string]interface{} "Tags retrieved successfully"
// @Router /api/tags/ [get]
func (tc *TagController) ListTags(c *gin.Context) {
	tags, err := tc.repo.FindAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve tags")
		return
	}
	respondSuccess(c, http.StatusOK, "Tags retrieved successfully", tags)
}

// GetTagByID godoc
// @Summary Get a tag
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} map[string]interface{} "Tag retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Router /api/tags/{id}/ [get]
func (tc *TagController) GetTagByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	tag, err := tc.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve tag")
		return
	}

	respondSuccess(c, http.StatusOK, "Tag retrieved successfully", tag)
}

// CreateTag godoc
// @Summary Create a tag (admin)
// @Tags tags
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param tag body models.Tag true "Tag data"
// @Success 201 {object} map[string]interface{} "Tag created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Permission denied"
// @Router /api/tags/ [post]
func (tc *TagController) CreateTag(c *gin.Context) {
	var tag models.Tag
	if err := c.ShouldBindJSON(&tag); err != nil {
		respondBindError(c, err)
		return
	}
	tag.ID = 0

	if err := tc.repo.Create(c.Request.Context(), &tag); err != nil {
		respondServiceError(c, err, "Tag with this slug already exists")
		return
	}

	respondSuccess(c, http.StatusCreated, "Tag created successfully", tag)
}

// DeleteTag godoc
// @Summary Delete a tag (admin)
// @Tags tags
// @Security TokenAuth
// @Param id path int true "Tag ID"
// @Success 204 "Tag deleted"
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Router /api/tags/{id}/ [delete]
func (tc *TagController) DeleteTag(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := tc.repo.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete tag")
		return
	}

	c.Status(http.StatusNoContent)
}
