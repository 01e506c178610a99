package routes

import (
	"freight_settlement/internal/adapter/http/handlers"
	"freight_settlement/internal/adapter/http/middleware"
	"freight_settlement/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathTrips      = "/trips"
	PathChangeSets = "/changesets"
	PathTickets    = "/tickets"
)

func addSettlementRoutes(rg *gin.RouterGroup, stageHandler *handlers.StagePaymentHandler, ticketHandler *handlers.PaymentTicketHandler) {
	trips := rg.Group(PathTrips)
	{
		trips.GET("", stageHandler.ListTrips)
		trips.GET("/:trip_id/summary", stageHandler.TripSummary)
	}

	changeSets := rg.Group(PathChangeSets)
	{
		changeSets.POST("", stageHandler.OpenChangeSet)
		changeSets.PUT("/:changeset_id/stages/:stage_id", stageHandler.RecordEdit)
		changeSets.DELETE("/:changeset_id/stages/:stage_id", stageHandler.RevertEdit)
		changeSets.GET("/:changeset_id/pending", stageHandler.PendingEdits)
		changeSets.POST("/:changeset_id/save", stageHandler.SaveBulk)
	}

	tickets := rg.Group(PathTickets)
	{
		tickets.GET("/:trip_id", ticketHandler.GetTicket)
		tickets.PATCH("/:trip_id", ticketHandler.UpdateTicket)
		tickets.DELETE("/:trip_id", ticketHandler.DiscardTicket)
		tickets.POST("/:trip_id/advances", ticketHandler.AddAdvance)
		tickets.DELETE("/:trip_id/advances/:slot", ticketHandler.RemoveAdvance)
		tickets.GET("/:trip_id/authorizations", ticketHandler.ListAuthorizations)
		tickets.POST("/:trip_id/authorize", middleware.RequirePermission(entities.PermissionAuthorizePayments), ticketHandler.Authorize)
	}
}
