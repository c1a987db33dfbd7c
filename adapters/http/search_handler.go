package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	searchUC "github.com/khoahotran/devboard/internal/application/usecase/search"
	"github.com/khoahotran/devboard/pkg/apperror"
	"github.com/khoahotran/devboard/pkg/logger"
)

type SearchHandler struct {
	searchUseCase *searchUC.SearchUseCase
	logger        logger.Logger
}

func NewSearchHandler(uc *searchUC.SearchUseCase, log logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchUseCase: uc,
		logger:        log,
	}
}

func (h *SearchHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.Error(apperror.NewMissingParameter("q"))
		return
	}

	input := searchUC.SearchInput{Query: q}
	output, err := h.searchUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Results)
}
