package dto

type GoalOutput struct {
	ID       string
	Title    string
	Target   float64
	Current  float64
	Deadline string
	Color    string
	Percent  int
}

type CreateInput struct {
	Title    string
	Target   float64
	Deadline string
}

type EditInput struct {
	Title    string
	Target   float64
	Current  float64
	Deadline string
}
