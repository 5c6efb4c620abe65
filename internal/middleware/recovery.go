package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// MsgInternalError is the fulfillment text sent when a handler panics.
const MsgInternalError = "Sorry, something went wrong on our side. Please try again."

// Recovery turns a panic into a well-formed fulfillment reply. The NLU
// platform treats any non-200 webhook answer as a failed turn.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
					logger.Any("error", err),
					logger.String("request_id", c.GetString(ctxRequestID)),
					logger.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatusJSON(http.StatusOK, ginext.H{
					"fulfillmentText": MsgInternalError,
					"fulfillmentMessages": []ginext.H{
						{"text": ginext.H{"text": []string{MsgInternalError}}},
					},
				})
			}
		}()

		c.Next()
	}
}
