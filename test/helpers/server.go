package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"healthreach_backend/internal/app"
	"healthreach_backend/internal/auth"
	"healthreach_backend/internal/config"
	"healthreach_backend/internal/logger"
	"healthreach_backend/internal/middleware"
	"healthreach_backend/internal/models"
	"healthreach_backend/internal/routes"
)

// TestServer is a fully wired API over in-memory repositories.
type TestServer struct {
	Server  *httptest.Server
	BaseURL string

	Providers   *MemProviderRepo
	Curators    *MemCuratorRepo
	Schools     *MemSchoolRepo
	Partners    *MemPartnerRepo
	Specialties *MemSpecialtyRepo
	Email       *app.MockEmailProvider
	Files       *MemStorage
}

// NewTestServer starts an httptest server running the full router.
// The server is shut down when the test finishes.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = testConfig()
	logger.Init("test")

	ts := &TestServer{
		Providers:   NewMemProviderRepo(),
		Curators:    NewMemCuratorRepo(),
		Schools:     NewMemSchoolRepo(),
		Partners:    NewMemPartnerRepo(),
		Specialties: NewMemSpecialtyRepo(),
		Email:       &app.MockEmailProvider{},
		Files:       NewMemStorage(),
	}

	container := app.BuildServices(
		ts.Providers, ts.Curators, ts.Schools, ts.Partners, ts.Specialties,
		ts.Email, ts.Files,
	)
	appHandlers := app.InitializeHandlers(config.AppConfig, container)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	routes.RegisterRoutes(router, appHandlers)

	ts.Server = httptest.NewServer(router)
	ts.BaseURL = ts.Server.URL + "/api/v1"
	t.Cleanup(ts.Server.Close)
	return ts
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Upload.MaxSize = 5 * 1024 * 1024
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "http://files.test"
	return cfg
}

// SeedCurator creates a curator account and returns its plaintext
// password for sign-in.
func (ts *TestServer) SeedCurator(t *testing.T, email string) string {
	t.Helper()
	const password = "curator-pass-1"
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := ts.Curators.Create(&models.Curator{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Test Curator",
	}); err != nil {
		t.Fatalf("seed curator: %v", err)
	}
	return password
}

// SeedProvider creates a provider with the given completeness knobs
// and returns the stored record.
func (ts *TestServer) SeedProvider(t *testing.T, p *models.Provider, password string) *models.Provider {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	p.PasswordHash = hash
	if err := ts.Providers.Create(p); err != nil {
		t.Fatalf("seed provider: %v", err)
	}
	return p
}

// SeedSpecialty creates a specialty and returns it.
func (ts *TestServer) SeedSpecialty(t *testing.T, name string) *models.Specialty {
	t.Helper()
	s := &models.Specialty{Name: name}
	if err := ts.Specialties.Create(s); err != nil {
		t.Fatalf("seed specialty: %v", err)
	}
	return s
}

// SeedSchool creates a school and returns it.
func (ts *TestServer) SeedSchool(t *testing.T, school *models.School) *models.School {
	t.Helper()
	if err := ts.Schools.Create(school); err != nil {
		t.Fatalf("seed school: %v", err)
	}
	return school
}
