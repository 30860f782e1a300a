package dto

type TransactionOutput struct {
	ID          string
	Description string
	Amount      float64
	Signed      float64
	Time        string
	Kind        string
	Category    string
}

type TransactionInput struct {
	Description string
	Amount      float64
	Kind        string
	CategoryID  string
}

type CategoryOutput struct {
	ID   string
	Name string
}
