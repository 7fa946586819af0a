package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// Status is what /ready reports about the running service.
type Status struct {
	// Tiers are the storage tiers chosen at startup, in the order they are tried.
	Tiers []string
	// Generation is true when a provider credential is configured.
	Generation bool
}

// RegisterHealth registers /health and /ready.
func RegisterHealth(r *gin.Engine, st Status) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// ready only when cards can be stored somewhere and generation can run
	r.GET("/ready", func(c *gin.Context) {
		deps := gin.H{
			"storage":    st.Tiers,
			"generation": st.Generation,
		}
		uptime := time.Since(startTime).String()
		if len(st.Tiers) == 0 || !st.Generation {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})
}
