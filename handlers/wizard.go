package handlers

import (
	"errors"
	"net/http"

	"conectcliente/services/wizard"
	"conectcliente/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the conversational booking wizard over HTTP.
type WizardHandler struct {
	Service wizard.WizardService
	Logger  *zap.Logger
}

func NewWizardHandler(svc wizard.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Service: svc, Logger: logger}
}

// StartSession opens a new conversation and returns the opening transcript.
func (h *WizardHandler) StartSession(c *gin.Context) {
	conv, err := h.Service.StartConversation(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to start conversation", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to start conversation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": conv,
		"options": wizard.ServiceOptions(),
		"slots":   wizard.TimeSlots(),
	})
}

// GetSession returns the current transcript for a session.
func (h *WizardHandler) GetSession(c *gin.Context) {
	conv, err := h.Service.GetConversation(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": conv})
}

// SubmitAnswer applies one answer to the session's conversation.
func (h *WizardHandler) SubmitAnswer(c *gin.Context) {
	var input struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	conv, err := h.Service.SubmitAnswer(c.Request.Context(), c.Param("sessionID"), input.Value)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": conv})
}

// SelectDate submits a calendar date for the date stage.
func (h *WizardHandler) SelectDate(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	conv, err := h.Service.SelectDate(c.Request.Context(), c.Param("sessionID"), input.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": conv})
}

// SelectTime submits a time slot for the time stage.
func (h *WizardHandler) SelectTime(c *gin.Context) {
	var input struct {
		Slot string `json:"slot"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	conv, err := h.Service.SelectTime(c.Request.Context(), c.Param("sessionID"), input.Slot)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": conv})
}

// RestartSession resets the conversation back to the first stage.
func (h *WizardHandler) RestartSession(c *gin.Context) {
	conv, err := h.Service.RestartConversation(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": conv})
}

func (h *WizardHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "session not found", err.Error())
	case errors.Is(err, wizard.ErrConversationFinished):
		utils.JSONError(c, http.StatusConflict, "conversation already finished", err.Error())
	case errors.Is(err, wizard.ErrEmptyAnswer),
		errors.Is(err, wizard.ErrUnknownService),
		errors.Is(err, wizard.ErrUnknownSlot),
		errors.Is(err, wizard.ErrInvalidDate),
		errors.Is(err, wizard.ErrDateOutOfRange):
		utils.JSONError(c, http.StatusBadRequest, "answer rejected", err.Error())
	default:
		h.Logger.Error("wizard request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
