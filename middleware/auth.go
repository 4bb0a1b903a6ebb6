package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyRequired checks the api_key query parameter against the shared
// secret. Rejections keep status 200 and carry a Forbidden payload, which is
// what existing clients of /report_closed expect.
func APIKeyRequired(secret string) gin.HandlerFunc {
	want := []byte(secret)
	return func(c *gin.Context) {
		got := []byte(c.Query("api_key"))
		if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
			c.JSON(http.StatusOK, gin.H{"response": gin.H{"Forbidden": "Invalid API KEy"}})
			c.Abort()
			return
		}
		c.Next()
	}
}
