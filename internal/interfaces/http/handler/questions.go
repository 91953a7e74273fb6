package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/hermes/backend/internal/domain/identity"
	"github.com/hermes/backend/internal/domain/questionnaire"
	"github.com/hermes/backend/internal/interfaces/http/middleware"
)

// QuestionsHandler serves the role-specific question catalog
type QuestionsHandler struct {
	BaseHandler
}

// NewQuestionsHandler creates a new QuestionsHandler
func NewQuestionsHandler() *QuestionsHandler {
	return &QuestionsHandler{}
}

// QuestionResponse represents a single question. Type is "categorical"
// or "numerical"; Options is set for categorical questions, Min and Max
// for numerical ones.
type QuestionResponse struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
}

func newQuestionResponse(spec questionnaire.QuestionSpec) QuestionResponse {
	switch q := spec.(type) {
	case questionnaire.CategoricalQuestion:
		return QuestionResponse{
			ID:       q.ID,
			Text:     q.Text,
			Type:     "categorical",
			Required: q.Required,
			Options:  q.Options,
		}
	case questionnaire.NumericalQuestion:
		min, max := q.Min, q.Max
		return QuestionResponse{
			ID:       q.ID,
			Text:     q.Text,
			Type:     "numerical",
			Required: q.Required,
			Min:      &min,
			Max:      &max,
		}
	default:
		return QuestionResponse{
			ID:       spec.QuestionID(),
			Text:     spec.QuestionText(),
			Required: spec.IsRequired(),
		}
	}
}

// QuestionsResponse groups questions by form section
type QuestionsResponse struct {
	Role     string                        `json:"role"`
	Sections map[string][]QuestionResponse `json:"sections"`
}

// List returns the question catalog for the authenticated user's role.
// An optional section query parameter restricts the response to one
// section; unknown sections yield an empty catalog.
func (h *QuestionsHandler) List(c *gin.Context) {
	role := identity.Role(middleware.GetJWTRole(c))

	sections := []questionnaire.Section{questionnaire.SectionQuality, questionnaire.SectionProduction}
	if param := c.Query("section"); param != "" {
		sections = []questionnaire.Section{questionnaire.Section(param)}
	}

	response := QuestionsResponse{
		Role:     string(role),
		Sections: make(map[string][]QuestionResponse, len(sections)),
	}
	for _, section := range sections {
		specs := questionnaire.QuestionsFor(role, section)
		questions := make([]QuestionResponse, 0, len(specs))
		for _, spec := range specs {
			questions = append(questions, newQuestionResponse(spec))
		}
		response.Sections[string(section)] = questions
	}

	h.Success(c, response)
}

// RegisterRoutes registers question routes on the router group
func (h *QuestionsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questions", h.List)
}
