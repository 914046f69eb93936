package router

import (
	"net/http"
	"strings"

	"claims-management/internal/handlers"
	"claims-management/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func Setup(r *gin.Engine, pool *pgxpool.Pool, allowedOrigins string) {
	corsConfig := cors.DefaultConfig()
	if allowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	} else {
		// Developer convenience; set CORS_ALLOWED_ORIGINS in production.
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowHeaders("Origin", "Content-Type")
	r.Use(cors.New(corsConfig))

	// Simple health check (also verifies DB connectivity)
	r.GET("/health", func(c *gin.Context) {
		var one int
		if err := pool.QueryRow(c.Request.Context(), "select 1").Scan(&one); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "db_error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ch := handlers.NewClaimHandler(repository.NewClaimRepository(pool))

	api := r.Group("/api")
	api.POST("/claims", ch.SubmitClaim)
	api.GET("/claims", ch.ListClaims)
	api.PUT("/claims/:id", ch.UpdateClaimStatus)
	api.DELETE("/claims", ch.ClearClaims)
}
