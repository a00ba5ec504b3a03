package dto

type PlanResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	PriceLabel  string `json:"price_label"`
	Credits     int    `json:"credits"`
	Description string `json:"description"`
}

type CheckoutURLResponse struct {
	PlanId      string `json:"plan_id"`
	CheckoutURL string `json:"checkout_url"`
}
