package handlers

import (
	clientRepo "conectcliente/database/repository/client"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every HTTP handler the routes package wires up.
type HandlerBundle struct {
	ClientRepo clientRepo.ClientRepository

	// Client endpoints.
	RegisterClientHandler        gin.HandlerFunc
	AuthenticateClientHandler    gin.HandlerFunc
	GetClientHandler             gin.HandlerFunc
	UpdateFCMTokenHandler        gin.HandlerFunc
	RevokeClientAuthTokenHandler gin.HandlerFunc
	DeleteClientHandler          gin.HandlerFunc

	// Wizard endpoints.
	StartSession   gin.HandlerFunc
	GetSession     gin.HandlerFunc
	SubmitAnswer   gin.HandlerFunc
	SelectDate     gin.HandlerFunc
	SelectTime     gin.HandlerFunc
	RestartSession gin.HandlerFunc

	// Schedule endpoints.
	ScheduleOverview gin.HandlerFunc
	MyBookings       gin.HandlerFunc

	// Feedback endpoints.
	SubmitFeedback gin.HandlerFunc
	ListFeedback   gin.HandlerFunc

	// Catalogue endpoint.
	ListServices gin.HandlerFunc
}
