package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/search"
)

// SearchHandler serves full-text entity search
type SearchHandler struct {
	client search.Client
	log    *logrus.Logger
}

// NewSearchHandler creates a new SearchHandler instance
func NewSearchHandler(client search.Client, log *logrus.Logger) *SearchHandler {
	return &SearchHandler{client: client, log: log}
}

// Search runs a query-string search across indexed entities
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query parameter q"})
		return
	}

	size := 20
	if sizeStr := c.Query("size"); sizeStr != "" {
		parsed, err := strconv.Atoi(sizeStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size parameter"})
			return
		}
		size = parsed
	}

	results, err := h.client.Search(c, query, size)
	if err != nil {
		h.log.WithError(err).Error("Search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(results), "results": results})
}
