package questionnaire

import (
	"github.com/hermes/backend/internal/domain/identity"
)

// Section identifies which of the two form pages a question appears on
type Section string

const (
	SectionQuality    Section = "quality"
	SectionProduction Section = "production"
)

// IsValid reports whether the section is one of the known values
func (s Section) IsValid() bool {
	return s == SectionQuality || s == SectionProduction
}

// QuestionSpec is a single question shown to a role. It is a closed set of
// variants: CategoricalQuestion and NumericalQuestion. The catalog is
// presentation metadata only; submission validation lives in the entity
// schema and does not depend on role.
type QuestionSpec interface {
	QuestionID() string
	QuestionText() string
	IsRequired() bool

	isQuestionSpec()
}

// CategoricalQuestion is answered by picking one of an ordered option list
type CategoricalQuestion struct {
	ID       string
	Text     string
	Options  []string
	Required bool
}

func (q CategoricalQuestion) QuestionID() string   { return q.ID }
func (q CategoricalQuestion) QuestionText() string { return q.Text }
func (q CategoricalQuestion) IsRequired() bool     { return q.Required }
func (q CategoricalQuestion) isQuestionSpec()      {}

// NumericalQuestion is answered with a number inside [Min, Max]
type NumericalQuestion struct {
	ID       string
	Text     string
	Min      float64
	Max      float64
	Required bool
}

func (q NumericalQuestion) QuestionID() string   { return q.ID }
func (q NumericalQuestion) QuestionText() string { return q.Text }
func (q NumericalQuestion) IsRequired() bool     { return q.Required }
func (q NumericalQuestion) isQuestionSpec()      {}

// catalog maps (role, section) to the ordered question sequence for that
// role. Supervisors and operators see reduced sets.
var catalog = map[identity.Role]map[Section][]QuestionSpec{
	identity.RoleAdmin: {
		SectionQuality: {
			CategoricalQuestion{
				ID:       "q1",
				Text:     "¿Cuál es el estado general del producto?",
				Options:  []string{"A - Excelente", "B - Bueno", "C - Regular"},
				Required: true,
			},
			NumericalQuestion{
				ID:       "q2",
				Text:     "¿Cuál es el nivel de calidad del acabado?",
				Min:      1,
				Max:      10,
				Required: true,
			},
		},
		SectionProduction: {
			CategoricalQuestion{
				ID:       "p1",
				Text:     "¿Cuál es el estado de la línea de producción?",
				Options:  []string{"A - Óptimo", "B - Normal", "C - Requiere atención"},
				Required: true,
			},
			NumericalQuestion{
				ID:       "p2",
				Text:     "¿Cuál es la eficiencia de producción?",
				Min:      0,
				Max:      100,
				Required: true,
			},
		},
	},
	identity.RoleSupervisor: {
		SectionQuality: {
			CategoricalQuestion{
				ID:       "q1",
				Text:     "¿Cuál es el estado general del producto?",
				Options:  []string{"A - Excelente", "B - Bueno", "C - Regular"},
				Required: true,
			},
		},
		SectionProduction: {
			CategoricalQuestion{
				ID:       "p1",
				Text:     "¿Cuál es el estado de la línea de producción?",
				Options:  []string{"A - Óptimo", "B - Normal", "C - Requiere atención"},
				Required: true,
			},
		},
	},
	identity.RoleOperator: {
		SectionQuality: {
			CategoricalQuestion{
				ID:       "q1",
				Text:     "¿El producto cumple con los estándares básicos?",
				Options:  []string{"A - Sí", "B - Parcialmente", "C - No"},
				Required: true,
			},
		},
		SectionProduction: {
			CategoricalQuestion{
				ID:       "p1",
				Text:     "¿La línea está funcionando correctamente?",
				Options:  []string{"A - Sí", "B - Parcialmente", "C - No"},
				Required: true,
			},
		},
	},
}

// QuestionsFor returns the ordered question sequence for a role and
// section. Unknown roles or sections see no extra questions; the result is
// an empty slice, never an error.
func QuestionsFor(role identity.Role, section Section) []QuestionSpec {
	sections, ok := catalog[role]
	if !ok {
		return []QuestionSpec{}
	}
	questions, ok := sections[section]
	if !ok {
		return []QuestionSpec{}
	}

	// Callers get their own copy; the catalog itself is immutable.
	out := make([]QuestionSpec, len(questions))
	copy(out, questions)
	return out
}
