package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/khoahotran/devboard/internal/application/usecase/project"
	"github.com/khoahotran/devboard/pkg/apperror"
	"github.com/khoahotran/devboard/pkg/logger"
)

type ProjectHandler struct {
	listBySkillUseCase *projectUC.ListBySkillUseCase
	logger             logger.Logger
}

func NewProjectHandler(uc *projectUC.ListBySkillUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		listBySkillUseCase: uc,
		logger:             log,
	}
}

// ListBySkill requires a non-empty skill parameter and rejects the
// request before touching the database when it is absent.
func (h *ProjectHandler) ListBySkill(c *gin.Context) {
	skill := c.Query("skill")
	if skill == "" {
		c.Error(apperror.NewMissingParameter("skill"))
		return
	}

	input := projectUC.ListBySkillInput{Skill: skill}
	output, err := h.listBySkillUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Projects)
}
