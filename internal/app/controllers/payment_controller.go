package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/suhaktamgu/academy/internal/app/models"
	"github.com/suhaktamgu/academy/internal/app/models/dto"
	"github.com/suhaktamgu/academy/internal/app/services"
	"github.com/suhaktamgu/academy/internal/middleware"
)

// PaymentController manages monthly tuition billing.
type PaymentController struct {
	paymentService *services.PaymentService
	logger         zerolog.Logger
}

// NewPaymentController creates a new PaymentController.
func NewPaymentController(paymentService *services.PaymentService, logger zerolog.Logger) *PaymentController {
	return &PaymentController{paymentService: paymentService, logger: logger}
}

// Upsert records a student's bill for a month
// @Summary Save payment
// @Description One row per student per month; saving again revises it. The total is derived from the fee parts server-side.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpsertPaymentRequest true "Bill"
// @Success 200 {object} dto.APIResponse{data=models.Payment}
// @Failure 400 {object} dto.APIResponse
// @Router /payments [post]
func (c *PaymentController) Upsert(ctx *gin.Context) {
	var req dto.UpsertPaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	payment, err := c.paymentService.Upsert(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: payment})
}

// Month returns the billing roster for one month
// @Summary Month billing roster
// @Description Every active student appears, with their payment row when one exists.
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param yearMonth query string false "Month (defaults to current)"
// @Success 200 {object} dto.APIResponse{data=dto.PaymentMonthResponse}
// @Router /payments [get]
func (c *PaymentController) Month(ctx *gin.Context) {
	month, err := c.paymentService.Month(ctx.Request.Context(), ctx.Query("yearMonth"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: month})
}

// History returns one student's payment history
// @Summary Payment history
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param studentId query int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Payment}
// @Router /payments/history [get]
func (c *PaymentController) History(ctx *gin.Context) {
	studentID := queryID(ctx, "studentId")
	if studentID == 0 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid studentId parameter"),
		})
		return
	}

	payments, err := c.paymentService.History(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: payments})
}

// UpdateStatus changes a payment's billing state
// @Summary Update payment status
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Param request body dto.UpdatePaymentStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /payments/{id} [patch]
func (c *PaymentController) UpdateStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.paymentService.UpdateStatus(ctx.Request.Context(), id, models.PaymentStatus(req.Status)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "수납 상태가 변경되었습니다"}})
}

// Delete removes a payment row
// @Summary Delete payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /payments/{id} [delete]
func (c *PaymentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.paymentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "수납 정보가 삭제되었습니다"}})
}
