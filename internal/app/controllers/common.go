package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/suhaktamgu/academy/internal/app/models/dto"
)

// parseIDParam reads a positive integer path parameter. On failure it
// writes the 400 itself and returns false so the handler can bail.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter"),
		})
		return 0, false
	}
	return id, true
}

// queryID reads an optional integer query parameter, returning 0 when
// absent or malformed.
func queryID(ctx *gin.Context, name string) int64 {
	id, err := strconv.ParseInt(ctx.Query(name), 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

func bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: dto.HandleValidationError(err)})
		return false
	}
	return true
}
