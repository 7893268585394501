package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes собирает весь REST-интерфейс под /api.
func RegisterRoutes(r *gin.Engine, bh *BookingHandler, uh *UserHandler, dh *DoctorHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	RegisterBookingRoutes(api, bh)
	RegisterUserRoutes(api, uh)
	RegisterDoctorRoutes(api, dh)
}
