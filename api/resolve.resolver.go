package api

import (
	"errors"

	"floodloss/internal/domain"

	"github.com/gin-gonic/gin"
)

type resolveRequest struct {
	Curve string   `json:"curve"`
	Depth *float64 `json:"depth"`
}

type resolveResponse struct {
	Curve  string  `json:"curve"`
	Depth  float64 `json:"depth"`
	Bucket int     `json:"bucket"`
	Loss   float64 `json:"loss"`
}

func (m ApiHandler) resolve(c *gin.Context) {
	var requestBody resolveRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Depth == nil {
		returnErrorJsonCode(errors.New("depth is required"), c, 400)
		return
	}

	loss, err := m.LossResolver.Resolve(requestBody.Curve, *requestBody.Depth)
	if err != nil {
		if errors.As(err, &domain.UnknownCurveError{}) {
			returnErrorJsonCode(err, c, 404)
			return
		}
		if errors.As(err, &domain.DepthNotFoundError{}) {
			returnErrorJsonCode(err, c, 422)
			return
		}
		returnErrorJson(err, c)
		return
	}

	bucket, _ := domain.BucketIndex(*requestBody.Depth, m.CurveStore.Resolution())
	c.JSON(200, resolveResponse{
		Curve:  requestBody.Curve,
		Depth:  *requestBody.Depth,
		Bucket: bucket,
		Loss:   loss,
	})
}
