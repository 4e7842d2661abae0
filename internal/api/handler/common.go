package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID 解析路径中的数字 ID
func pathID(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
