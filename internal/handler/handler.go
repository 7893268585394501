package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deExistent98/clinic-booking/internal/pagination"
)

// parseID достаёт числовой идентификатор из параметра пути.
// При мусоре в пути отвечает 400 и возвращает ok=false.
func parseID(c *gin.Context, name string) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id64), true
}

// respondList отдаёт либо весь список, либо страницу,
// если в запросе есть ?page=N (и опционально pageSize).
func respondList[T any](c *gin.Context, items []T) {
	raw := c.Query("page")
	if raw == "" {
		c.JSON(http.StatusOK, items)
		return
	}

	page, _ := strconv.Atoi(raw)
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	c.JSON(http.StatusOK, pagination.Paginate(items, page, size))
}
