package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 10)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 10, limit)

	offset, limit = CalculateOffsetLimit(3, 20)
	assert.Equal(t, 40, offset)
	assert.Equal(t, 20, limit)

	// Out-of-range sizes fall back to the default.
	offset, limit = CalculateOffsetLimit(2, 0)
	assert.Equal(t, DefaultPageSize, limit)
	assert.Equal(t, DefaultPageSize, offset)

	_, limit = CalculateOffsetLimit(1, MaxPageSize+1)
	assert.Equal(t, DefaultPageSize, limit)

	offset, _ = CalculateOffsetLimit(-5, 10)
	assert.Equal(t, 0, offset)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, int64(45), info.TotalItems)

	// Empty result set still reports one page.
	info = NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.TotalPages)

	// Page beyond the end is clamped.
	info = NewPaginationInfo(10, 9, 10)
	assert.Equal(t, 1, info.CurrentPage)
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/students?page=3&limit=25", nil)
	page, size := ParsePaginationParams(ctx)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, size)

	ctx, _ = gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("GET", "/students?page=abc&limit=9999", nil)
	page, size = ParsePaginationParams(ctx)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPageSize, size)
}
