package model

// Scope carries the caller identity for store filtering.
type Scope struct {
	UserID   string
	Username string
}

// Environment names used for mode switches.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
