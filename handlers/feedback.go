package handlers

import (
	"net/http"

	"conectcliente/services/feedback"
	"conectcliente/utils"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler records client ratings.
type FeedbackHandler struct {
	Service feedback.FeedbackService
}

func NewFeedbackHandler(svc feedback.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Service: svc}
}

// Submit stores one feedback entry for the authenticated client.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	fb, err := h.Service.Submit(c.Request.Context(), c.GetString("clientID"), input.Rating, input.Comment)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "feedback rejected", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"feedback": fb})
}

// List returns all feedback entries.
func (h *FeedbackHandler) List(c *gin.Context) {
	entries, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load feedback", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": entries})
}
