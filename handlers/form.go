package handlers

import (
	"strconv"
	"strings"

	"cafe-api/config"

	"github.com/gin-gonic/gin"
)

func formBool(c *gin.Context, key string, mode config.BoolMode) bool {
	return parseBool(c.PostForm(key), mode)
}

// parseBool converts a submitted value to a boolean. In truthy mode every
// non-empty value is true, including "false" and "0".
func parseBool(raw string, mode config.BoolMode) bool {
	if mode == config.BoolStrict {
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		return err == nil && v
	}
	return raw != ""
}
