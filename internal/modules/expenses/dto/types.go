package dto

type ExpenseOutput struct {
	ID          string
	Description string
	Amount      float64
	Initials    string
}

type ExpenseInput struct {
	Description string
	Amount      float64
}
