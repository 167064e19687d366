package api

import (
	"database/sql"
	"fmt"
	"time"

	"floodloss/internal/calculator"
	"floodloss/internal/logger"
	"floodloss/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                *sql.DB
	CurveStore        calculator.CurveStore
	LossResolver      calculator.LossResolver
	AggregatorConfig  calculator.AggregatorConfig
	LossRunRepository repository.LossRunRepository
	Logger            *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to floodloss"})
	})
	router.GET("/curves", m.listCurves)
	router.GET("/curves/:name", m.getCurve)
	router.POST("/resolve", m.resolve)
	router.POST("/evaluate", m.evaluate)
	router.GET("/runs", m.listRuns)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Warnw("request failed", "status", code, "error", err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now()
	log := m.Logger.With(
		"requestID", uuid.New().String(),
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
	)
	ctx.Request = ctx.Request.WithContext(logger.NewContext(ctx.Request.Context(), log))

	ctx.Next()

	log.Infow(
		"handled request",
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", ctx.ClientIP(),
	)
}
