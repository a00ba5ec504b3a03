package dto

type ToolResponse struct {
	Id          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	CreditCost  int    `json:"credit_cost"`
}

type SkillsRequest struct {
	Discipline string `json:"discipline" validate:"required"`
	Grade      string `json:"grade" validate:"required"`
}

type SkillsResponse struct {
	Discipline string   `json:"discipline"`
	Grade      string   `json:"grade"`
	Skills     []string `json:"skills"`
}

type SuggestSkillsRequest struct {
	Discipline      string   `json:"discipline" validate:"required"`
	Grade           string   `json:"grade" validate:"required"`
	Subject         string   `json:"subject"`
	AvailableSkills []string `json:"available_skills"`
}

type SuggestSkillsResponse struct {
	Skills []string `json:"skills"`
}
