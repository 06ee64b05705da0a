package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suhaktamgu/academy/internal/app/models/dto"
)

// HealthController answers liveness probes.
type HealthController struct {
	db *pgxpool.Pool
}

// NewHealthController creates a new HealthController.
func NewHealthController(db *pgxpool.Pool) *HealthController {
	return &HealthController{db: db}
}

// Check reports service and database health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=map[string]string}
// @Failure 503 {object} dto.APIResponse
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	if err := c.db.Ping(ctx.Request.Context()); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "database unreachable"),
		})
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: map[string]string{"status": "ok"}})
}
