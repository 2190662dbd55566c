package model

// Environment names accepted in environment.name.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)
