package domain

// Scope is one of the two mutually exclusive storage lifetimes for the
// session credential. At most one scope holds a credential at a time.
type Scope string

const (
	ScopeDurable   Scope = "durable"
	ScopeEphemeral Scope = "ephemeral"
)

// Credentials is what a storage scope persists: the bearer token and the
// email it was issued for.
type Credentials struct {
	Token string `json:"token"`
	Email string `json:"userEmail"`
}

// AccountStatus is the server-derived routing state of the authenticated user.
type AccountStatus string

const (
	StatusUnknown         AccountStatus = "unknown"
	StatusNoAccount       AccountStatus = "no-account"
	StatusAccountInactive AccountStatus = "account-inactive"
	StatusActive          AccountStatus = "active"
)

// AccountProbe is the raw result of the status endpoint.
type AccountProbe struct {
	HasAccount bool
	Active     bool
}

// Step names the onboarding screen the user should be routed to next.
type Step string

const (
	StepLogin         Step = "login"
	StepAccountSetup  Step = "account-setup"
	StepPlanSelection Step = "plan-selection"
	StepDashboard     Step = "dashboard"
)
