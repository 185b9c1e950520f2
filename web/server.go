package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// paymentNotification is the subset of the gateway's webhook body the bot
// cares about. There is no reconciliation: the event is logged and acked.
type paymentNotification struct {
	Event  string `json:"event"`
	Object struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"object"`
}

// NewRouter builds the HTTP surface that runs alongside the bot poller:
// the page the payment gateway redirects customers back to, the gateway
// notification hook, and a health endpoint.
func NewRouter(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/payments/return", func(c *gin.Context) {
		c.String(http.StatusOK, "Payment processed. You can return to the bot.")
	})

	r.POST("/payments/notify", func(c *gin.Context) {
		var n paymentNotification
		if err := c.ShouldBindJSON(&n); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification body"})
			return
		}
		log.Info("payment notification",
			zap.String("event", n.Event),
			zap.String("payment_id", n.Object.ID),
			zap.String("status", n.Object.Status),
		)
		c.Status(http.StatusOK)
	})

	return r
}
