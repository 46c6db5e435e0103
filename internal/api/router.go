package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"renews/internal/classify"
	"renews/internal/logger"
	"renews/internal/metrics"
	"renews/internal/news"
)

type Server struct {
	aggregator  *news.Aggregator
	maxArticles int
}

func NewServer(aggregator *news.Aggregator, maxArticles int) *Server {
	return &Server{
		aggregator:  aggregator,
		maxArticles: maxArticles,
	}
}

// NewRouter constructs a Gin engine with registered routes.
func (s *Server) NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.CustomRecovery(errorResponse))

	r.GET("/api/news", s.getNews)
	r.GET("/health", s.health)
	r.GET("/metrics", s.stats)
	return r
}

// getNews runs the whole pipeline for one request. Individual feed failures
// are absorbed upstream; only an unexpected handler failure reaches the
// recovery middleware and produces a 500.
func (s *Server) getNews(c *gin.Context) {
	query := c.Query("query")
	category := c.Query("type")
	if category != "" && !classify.Known(category) {
		// not an error: an unrecognized value just matches nothing
		logger.Debug("unknown category filter", "type", category)
	}

	articles := s.aggregator.Run(c.Request.Context(), news.Query{
		Category:   category,
		TitleQuery: query,
		Limit:      s.maxArticles,
	})
	if articles == nil {
		articles = []news.Article{}
	}

	metrics.Global.IncrementRequestsServed()

	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Cache-Control", "public, max-age=300")
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func errorResponse(c *gin.Context, err any) {
	details := fmt.Sprintf("%v", err)
	logger.Error("request failed", "error", details)
	metrics.Global.SetError(details)

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error":   "failed to fetch news",
		"details": details,
	})
}

func (s *Server) health(c *gin.Context) {
	stats := metrics.Global.GetStats()

	status := http.StatusOK
	state := "ok"
	if healthy, ok := stats["is_healthy"].(bool); ok && !healthy {
		status = http.StatusServiceUnavailable
		state = "error"
	}

	c.JSON(status, gin.H{
		"status":     state,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	})
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.Global.GetStats())
}
