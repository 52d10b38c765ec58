package services

import (
	"healthreach_backend/internal/email"
)

// ServiceContainer bundles the constructed services for wiring.
type ServiceContainer struct {
	AuthService      AuthService
	ProviderService  ProviderService
	SchoolService    SchoolService
	PartnerService   PartnerService
	SpecialtyService SpecialtyService
	EmailService     email.Provider
}
