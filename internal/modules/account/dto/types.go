package dto

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	ID    string
	Name  string
	Email string
}

type PlanOutput struct {
	ID          string
	Name        string
	Price       float64
	Description string
}

type AccountOutput struct {
	PlanID     string
	PaymentURL string
}
