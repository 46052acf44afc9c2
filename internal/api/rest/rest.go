package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/squadplay/squad-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler *Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Currency ledger
		v1.GET("/squads/:squad_id/balance", middleware.Auth(authCfg), handler.GetBalance)
		v1.GET("/squads/:squad_id/transactions", middleware.Auth(authCfg), handler.ListTransactions)
		v1.POST("/squads/:squad_id/earn", middleware.APIKeyAuth(authCfg), handler.Earn)
		v1.POST("/squads/:squad_id/spend", middleware.Auth(authCfg), handler.Spend)
		v1.POST("/squads/:squad_id/daily-login", middleware.Auth(authCfg), handler.DailyLogin)

		// Power grants
		v1.GET("/squads/:squad_id/powers", middleware.Auth(authCfg), handler.ListPowers)
		v1.POST("/squads/:squad_id/powers", middleware.APIKeyAuth(authCfg), handler.GrantPower)
		v1.POST("/squads/:squad_id/powers/:grant_id/consume", middleware.Auth(authCfg), handler.ConsumePower)
		v1.POST("/squads/:squad_id/powers/:grant_id/cancel", middleware.APIKeyAuth(authCfg), handler.CancelPower)
		v1.GET("/squads/:squad_id/targeted", middleware.Auth(authCfg), handler.IsTargeted)

		// Challenges
		v1.POST("/squads/:squad_id/challenges", middleware.Auth(authCfg), handler.CreateChallenge)
		v1.GET("/squads/:squad_id/challenges", middleware.Auth(authCfg), handler.ListChallenges)
		v1.GET("/challenges/:challenge_id", middleware.Auth(authCfg), handler.GetChallenge)
		v1.POST("/challenges/:challenge_id/votes", middleware.Auth(authCfg), handler.Vote)

		// Judge role
		v1.GET("/squads/:squad_id/judge/today", middleware.Auth(authCfg), handler.GetTodayJudge)
		v1.POST("/squads/:squad_id/judge", middleware.APIKeyAuth(authCfg), handler.AssignJudge)
		v1.POST("/squads/:squad_id/judge/bonus", middleware.APIKeyAuth(authCfg), handler.JudgeBonus)
		v1.POST("/squads/:squad_id/judge/penalty", middleware.APIKeyAuth(authCfg), handler.JudgePenalty)
	}
}
