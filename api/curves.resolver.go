package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type curveSummaryResponse struct {
	Name       string  `json:"name"`
	NumBuckets int     `json:"numBuckets"`
	MinDepth   float64 `json:"minDepth"`
	MaxDepth   float64 `json:"maxDepth"`
}

type curveBucketResponse struct {
	Bucket int     `json:"bucket"`
	Depth  float64 `json:"depth"`
	Loss   float64 `json:"loss"`
}

type getCurveResponse struct {
	Name       string                `json:"name"`
	Resolution float64               `json:"resolution"`
	Buckets    []curveBucketResponse `json:"buckets"`
}

func (m ApiHandler) listCurves(c *gin.Context) {
	out := []curveSummaryResponse{}
	for _, name := range m.CurveStore.Names() {
		curve, ok := m.CurveStore.Get(name)
		if !ok {
			continue
		}
		minDepth, maxDepth := curve.DepthRange()
		out = append(out, curveSummaryResponse{
			Name:       name,
			NumBuckets: len(curve.Buckets),
			MinDepth:   minDepth,
			MaxDepth:   maxDepth,
		})
	}

	c.JSON(200, out)
}

func (m ApiHandler) getCurve(c *gin.Context) {
	name := c.Param("name")
	curve, ok := m.CurveStore.Get(name)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("loss curve <%s> unknown", name), c, 404)
		return
	}

	buckets := []curveBucketResponse{}
	for _, b := range curve.SortedBuckets() {
		buckets = append(buckets, curveBucketResponse{
			Bucket: b,
			Depth:  float64(b) * curve.Resolution,
			Loss:   curve.Buckets[b],
		})
	}

	c.JSON(200, getCurveResponse{
		Name:       curve.Name,
		Resolution: curve.Resolution,
		Buckets:    buckets,
	})
}
