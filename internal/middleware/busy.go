package middleware

import (
	"net/http"
	"sync/atomic"

	"backoffice/pkg/response"

	"github.com/gin-gonic/gin"
)

// Guard serializes mutating requests. The dashboard is operated by a handful
// of people; overlapping writes are rejected with 409 rather than queued.
// The check is best effort: two requests racing the flag can both pass, which
// is acceptable for this deployment and cheaper than a real lock around the
// remote round trips.
type Guard struct {
	busy atomic.Bool
}

func NewGuard() *Guard { return &Guard{} }

// Gate rejects a mutating request while another one is in flight.
func (g *Guard) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.busy.CompareAndSwap(false, true) {
			c.AbortWithStatusJSON(http.StatusConflict,
				response.Error(http.StatusConflict, "another write is in progress, retry shortly"))
			return
		}
		defer g.busy.Store(false)
		c.Next()
	}
}
