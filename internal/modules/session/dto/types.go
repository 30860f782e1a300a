package dto

type LoginInput struct {
	Email    string
	Password string
	Remember bool
}

type LoginOutput struct {
	Email    string
	Status   string
	NextStep string
}

type SessionOutput struct {
	Authenticated bool
	Email         string
	Scope         string
	Status        string
	NextStep      string
}
