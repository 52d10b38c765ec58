package handlers

// AppHandlers bundles the constructed handlers for route wiring.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	ProviderHandler  *ProviderHandler
	SchoolHandler    *SchoolHandler
	PartnerHandler   *PartnerHandler
	SpecialtyHandler *SpecialtyHandler
}
