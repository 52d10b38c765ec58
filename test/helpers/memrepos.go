// Package helpers provides in-memory repositories, storage and a
// fully wired test server so suites run without postgres or SMTP.
package helpers

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"healthreach_backend/internal/models"
	"healthreach_backend/internal/repositories"
)

// MemProviderRepo is an in-memory repositories.ProviderRepository.
type MemProviderRepo struct {
	mu        sync.Mutex
	providers map[string]*models.Provider // keyed by ID
}

func NewMemProviderRepo() *MemProviderRepo {
	return &MemProviderRepo{providers: make(map[string]*models.Provider)}
}

func (r *MemProviderRepo) FindByID(id string) (*models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, repositories.ErrProviderNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *MemProviderRepo) FindByEmail(email string) (*models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.providers {
		if strings.EqualFold(p.Email, email) {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repositories.ErrProviderNotFound
}

func (r *MemProviderRepo) FindByResetToken(token string) (*models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token == "" {
		return nil, repositories.ErrProviderNotFound
	}
	for _, p := range r.providers {
		if p.ResetToken == token {
			clone := *p
			return &clone, nil
		}
	}
	return nil, repositories.ErrProviderNotFound
}

func (r *MemProviderRepo) FindAll() ([]models.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Provider, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemProviderRepo) Create(provider *models.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.providers {
		if strings.EqualFold(p.Email, provider.Email) {
			return repositories.ErrProviderAlreadyExists
		}
	}
	if provider.ID == "" {
		provider.ID = uuid.NewString()
	}
	provider.CreatedAt = time.Now()
	provider.UpdatedAt = provider.CreatedAt
	clone := *provider
	r.providers[provider.ID] = &clone
	return nil
}

func (r *MemProviderRepo) Update(provider *models.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[provider.ID]; !ok {
		return repositories.ErrProviderNotFound
	}
	provider.UpdatedAt = time.Now()
	clone := *provider
	r.providers[provider.ID] = &clone
	return nil
}

func (r *MemProviderRepo) UpdateStatusByEmail(email string, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.providers {
		if strings.EqualFold(p.Email, email) {
			p.ApplicationStatus = status
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return repositories.ErrProviderNotFound
}

func (r *MemProviderRepo) CountBySchool(schoolID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.providers {
		if p.SchoolID != nil && *p.SchoolID == schoolID {
			n++
		}
	}
	return n, nil
}

// MemCuratorRepo is an in-memory repositories.CuratorRepository.
type MemCuratorRepo struct {
	mu       sync.Mutex
	curators map[string]*models.Curator
}

func NewMemCuratorRepo() *MemCuratorRepo {
	return &MemCuratorRepo{curators: make(map[string]*models.Curator)}
}

func (r *MemCuratorRepo) FindByEmail(email string) (*models.Curator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.curators {
		if strings.EqualFold(c.Email, email) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, repositories.ErrCuratorNotFound
}

func (r *MemCuratorRepo) Create(curator *models.Curator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if curator.ID == "" {
		curator.ID = uuid.NewString()
	}
	curator.CreatedAt = time.Now()
	clone := *curator
	r.curators[curator.ID] = &clone
	return nil
}

// MemSchoolRepo is an in-memory repositories.SchoolRepository.
type MemSchoolRepo struct {
	mu      sync.Mutex
	schools map[string]*models.School
}

func NewMemSchoolRepo() *MemSchoolRepo {
	return &MemSchoolRepo{schools: make(map[string]*models.School)}
}

func (r *MemSchoolRepo) FindByID(id string) (*models.School, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.schools[id]
	if !ok {
		return nil, repositories.ErrSchoolNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *MemSchoolRepo) FindAll() ([]models.School, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.School, 0, len(r.schools))
	for _, s := range r.schools {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemSchoolRepo) Create(school *models.School) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if school.ID == "" {
		school.ID = uuid.NewString()
	}
	school.CreatedAt = time.Now()
	school.UpdatedAt = school.CreatedAt
	clone := *school
	r.schools[school.ID] = &clone
	return nil
}

func (r *MemSchoolRepo) Update(school *models.School) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schools[school.ID]; !ok {
		return repositories.ErrSchoolNotFound
	}
	school.UpdatedAt = time.Now()
	clone := *school
	r.schools[school.ID] = &clone
	return nil
}

func (r *MemSchoolRepo) UpdateStatus(id string, status models.SchoolStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.schools[id]
	if !ok {
		return repositories.ErrSchoolNotFound
	}
	s.Status = status
	s.UpdatedAt = time.Now()
	return nil
}

// MemPartnerRepo is an in-memory repositories.PartnerRepository.
type MemPartnerRepo struct {
	mu       sync.Mutex
	partners map[string]*models.Partner
}

func NewMemPartnerRepo() *MemPartnerRepo {
	return &MemPartnerRepo{partners: make(map[string]*models.Partner)}
}

func (r *MemPartnerRepo) FindByID(id string) (*models.Partner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.partners[id]
	if !ok {
		return nil, repositories.ErrPartnerNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *MemPartnerRepo) FindAll() ([]models.Partner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Partner, 0, len(r.partners))
	for _, p := range r.partners {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemPartnerRepo) FindBySchool(schoolID string) ([]models.Partner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Partner
	for _, p := range r.partners {
		if p.SchoolID != nil && *p.SchoolID == schoolID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *MemPartnerRepo) Create(partner *models.Partner) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if partner.ID == "" {
		partner.ID = uuid.NewString()
	}
	partner.CreatedAt = time.Now()
	clone := *partner
	r.partners[partner.ID] = &clone
	return nil
}

func (r *MemPartnerRepo) CountBySchool(schoolID string) (int64, error) {
	partners, _ := r.FindBySchool(schoolID)
	return int64(len(partners)), nil
}

// MemSpecialtyRepo is an in-memory repositories.SpecialtyRepository.
type MemSpecialtyRepo struct {
	mu          sync.Mutex
	specialties map[string]*models.Specialty
}

func NewMemSpecialtyRepo() *MemSpecialtyRepo {
	return &MemSpecialtyRepo{specialties: make(map[string]*models.Specialty)}
}

func (r *MemSpecialtyRepo) FindByID(id string) (*models.Specialty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.specialties[id]
	if !ok {
		return nil, repositories.ErrSpecialtyNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *MemSpecialtyRepo) FindByName(name string) (*models.Specialty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.specialties {
		if strings.EqualFold(s.Name, name) {
			clone := *s
			return &clone, nil
		}
	}
	return nil, repositories.ErrSpecialtyNotFound
}

func (r *MemSpecialtyRepo) FindAll() ([]models.Specialty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Specialty, 0, len(r.specialties))
	for _, s := range r.specialties {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *MemSpecialtyRepo) Create(specialty *models.Specialty) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.specialties {
		if strings.EqualFold(s.Name, specialty.Name) {
			return repositories.ErrSpecialtyAlreadyExists
		}
	}
	if specialty.ID == "" {
		specialty.ID = uuid.NewString()
	}
	specialty.CreatedAt = time.Now()
	clone := *specialty
	r.specialties[specialty.ID] = &clone
	return nil
}
