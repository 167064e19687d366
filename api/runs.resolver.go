package api

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) listRuns(c *gin.Context) {
	if m.Db == nil || m.LossRunRepository == nil {
		returnErrorJsonCode(errors.New("run history is not configured"), c, 404)
		return
	}

	limit := 20
	if l := c.Query("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			returnErrorJsonCode(errors.New("limit must be a positive integer"), c, 400)
			return
		}
		limit = n
	}

	runs, err := m.LossRunRepository.List(m.Db, limit)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, runs)
}
