package handlers

// AppHandlers bundles the HTTP handlers for route registration.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	ProtectedHandler *ProtectedHandler
}
