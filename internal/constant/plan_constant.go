package constant

type PlanInfo struct {
	Id          string
	Name        string
	PriceLabel  string
	Credits     int
	Description string
}

// Plans espelha a tabela de planos exibida ao professor. Os ids são os
// mesmos usados como chave dos links de checkout hospedados.
var Plans = []PlanInfo{
	{
		Id:          "price_basico",
		Name:        "Básico",
		PriceLabel:  "Grátis",
		Credits:     100,
		Description: "Ferramentas IA com créditos mensais limitados.",
	},
	{
		Id:          "prod_TzUJ3EbgFL26nD",
		Name:        "Start",
		PriceLabel:  "R$ 19/mês",
		Credits:     400,
		Description: "Mais créditos para uso frequente em sala.",
	},
	{
		Id:          "price_premium",
		Name:        "Premium",
		PriceLabel:  "R$ 29/mês",
		Credits:     0,
		Description: "Gerações ilimitadas e temas premium de slides.",
	},
}

func FindPlan(id string) (PlanInfo, bool) {
	for _, p := range Plans {
		if p.Id == id {
			return p, true
		}
	}
	return PlanInfo{}, false
}
