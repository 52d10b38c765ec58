package views

import "healthreach_backend/pkg/client/api"

// Sample data shown when a view is configured with DemoFallback and
// the server cannot be reached.

// DemoSchools returns the built-in sample school list.
func DemoSchools() []api.School {
	return []api.School{
		{
			ID:             "demo-school-1",
			Name:           "Kwame Nkrumah University of Science and Technology",
			Nickname:       "KNUST",
			Type:           "University",
			Campuses:       []string{"Kumasi"},
			Status:         "active",
			TotalProviders: 42,
			TotalPartners:  3,
		},
		{
			ID:             "demo-school-2",
			Name:           "Accra Nursing and Midwifery Training College",
			Nickname:       "Accra NMTC",
			Type:           "NMTC",
			Campuses:       []string{"Korle Bu", "Pantang"},
			Status:         "active",
			TotalProviders: 18,
			TotalPartners:  1,
		},
		{
			ID:       "demo-school-3",
			Name:     "Presbyterian Senior High School",
			Nickname: "Presec",
			Type:     "SHS",
			Campuses: []string{"Legon"},
			Status:   "active",
		},
	}
}

// DemoProviders returns the built-in sample provider list.
func DemoProviders() []api.Provider {
	return []api.Provider{
		{
			ID:                "demo-provider-1",
			Email:             "ama.mensah@example.com",
			FullName:          "Dr. Ama Mensah",
			ProfessionalTitle: "Pediatrician",
			ApplicationStatus: "APPROVED",
			IsVerified:        true,
		},
		{
			ID:                "demo-provider-2",
			Email:             "kofi.boateng@example.com",
			FullName:          "Kofi Boateng",
			ProfessionalTitle: "Community Health Nurse",
			ApplicationStatus: "PENDING",
			IsVerified:        true,
		},
	}
}

// DemoPartners returns the built-in sample partner list.
func DemoPartners() []api.Partner {
	return []api.Partner{
		{
			ID:       "demo-partner-1",
			Name:     "Ghana Health Service",
			Category: "Government",
			Location: "Accra",
			Status:   "active",
		},
		{
			ID:       "demo-partner-2",
			Name:     "Korle Bu Teaching Hospital",
			Category: "Hospital",
			Location: "Accra",
			Status:   "active",
		},
	}
}
