package services

import "accounts_backend/internal/email"

// ServiceContainer bundles the services for dependency injection.
type ServiceContainer struct {
	UserService  UserService
	AuthService  AuthService
	EmailService email.Provider
}
