package handlers

import (
	"net/http"

	"conectcliente/services/client"
	"conectcliente/utils"

	"github.com/gin-gonic/gin"
)

var clientService client.ClientService

// SetClientService injects the client service used by the package-level
// handlers.
func SetClientService(svc client.ClientService) {
	clientService = svc
}

// RegisterClientHandler handles sign-up.
func RegisterClientHandler(c *gin.Context) {
	var input client.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	rec, err := clientService.Register(input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": rec})
}

// AuthenticateClientHandler handles sign-in and returns a session token.
func AuthenticateClientHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	rec, token, err := clientService.Authenticate(input.Email, input.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": rec, "token": token})
}

// GetClientHandler returns the authenticated client's profile.
func GetClientHandler(c *gin.Context) {
	id := c.GetString("clientID")
	rec, err := clientService.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "client not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": rec})
}

// UpdateFCMTokenHandler stores the device push token.
func UpdateFCMTokenHandler(c *gin.Context) {
	var input struct {
		FCMToken string `json:"fcmToken"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := clientService.UpdateFCMToken(c.GetString("clientID"), input.FCMToken); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update FCM token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RevokeClientAuthTokenHandler signs the client out.
func RevokeClientAuthTokenHandler(c *gin.Context) {
	if err := clientService.RevokeAuthToken(c.GetString("clientID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to revoke token", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DeleteClientHandler removes the authenticated client's account.
func DeleteClientHandler(c *gin.Context) {
	if err := clientService.Delete(c.GetString("clientID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete client", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
