package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type searchResponse struct {
	Query string `json:"query"`
	Mode  string `json:"mode"`
	Items any    `json:"items"`
}

func (s *Server) Search(c *gin.Context) {
	q := c.Query("q")

	result, err := s.searchSvc.Search(c.Request.Context(), q, 0)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, searchResponse{
		Query: q,
		Mode:  string(result.Mode),
		Items: result.Items,
	})
}
