package dto

type HealthOutput struct {
	Percent float64
	Level   string
}

type CardOutput struct {
	Masked string
	Expiry string
	Holder string
	Brand  string
}

type MonthOutput struct {
	Month  string
	Amount float64
}
