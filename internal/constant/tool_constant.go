package constant

type ToolKind string

const (
	ToolQuestions       ToolKind = "questoes-ia"
	ToolSlides          ToolKind = "slides-ia"
	ToolLessonPlan      ToolKind = "plano-aula"
	ToolEssayCorrection ToolKind = "corretor-ia"
)

type ToolInfo struct {
	Id          ToolKind
	Title       string
	Description string
	Icon        string
	Category    string
	CreditCost  int
}

// Tools é o catálogo exibido no dashboard. O custo em créditos é debitado
// por geração concluída.
var Tools = []ToolInfo{
	{
		Id:          ToolQuestions,
		Title:       "Criar Questionários IA",
		Description: "Gere questões automáticas personalizadas seguindo a BNCC.",
		Icon:        "fa-brain",
		Category:    "Avaliar",
		CreditCost:  1,
	},
	{
		Id:          ToolSlides,
		Title:       "Apresentação de Slides",
		Description: "Crie roteiros e estruturas de slides em segundos para sua aula.",
		Icon:        "fa-file-powerpoint",
		Category:    "Criar Aula",
		CreditCost:  1,
	},
	{
		Id:          ToolLessonPlan,
		Title:       "Plano de Aula",
		Description: "Planeje sua sequência didática completa com objetivos e BNCC.",
		Icon:        "fa-calendar-check",
		Category:    "Planejar",
		CreditCost:  1,
	},
	{
		Id:          ToolEssayCorrection,
		Title:       "Corretor de Redação",
		Description: "Auxílio na correção e feedback produtivo para estudantes.",
		Icon:        "fa-pen-nib",
		Category:    "Corrigir",
		CreditCost:  1,
	},
}

func FindTool(id ToolKind) (ToolInfo, bool) {
	for _, t := range Tools {
		if t.Id == id {
			return t, true
		}
	}
	return ToolInfo{}, false
}
