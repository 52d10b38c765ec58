package views

import (
	"context"
	"errors"
	"strings"

	"healthreach_backend/pkg/client/api"
)

// Draft-related errors for the two-phase school creation flow.
var (
	ErrNoDraft          = errors.New("no school draft to confirm")
	ErrSchoolNameEmpty  = errors.New("school name is required")
	ErrSchoolTypeEmpty  = errors.New("school type is required")
	ErrSchoolTypeWrong  = errors.New("school type must be one of JHS, SHS, NMTC, University")
	ErrAlreadyConfirmed = errors.New("draft confirmation already in progress")
)

var schoolTypes = []string{"JHS", "SHS", "NMTC", "University"}

// SchoolsView backs the curator's schools screen. Creation happens in
// two phases: a validated draft is staged for review, then confirmed.
type SchoolsView struct {
	api  *api.Client
	opts Options

	schools []api.School
	source  Source

	draft      *api.CreateSchoolRequest
	confirming bool
}

func NewSchoolsView(apiClient *api.Client, opts Options) *SchoolsView {
	return &SchoolsView{api: apiClient, opts: opts}
}

// Load fetches the school list. With DemoFallback on, a failed fetch
// shows sample data and marks the source as demo.
func (v *SchoolsView) Load(ctx context.Context) error {
	schools, err := v.api.ListSchools(ctx)
	if err != nil {
		if v.opts.DemoFallback {
			v.schools = DemoSchools()
			v.source = SourceDemo
			return nil
		}
		return err
	}
	v.schools = schools
	v.source = SourceLive
	return nil
}

// Source reports whether the current list is live or demo data.
func (v *SchoolsView) Source() Source { return v.source }

// Schools returns the current list unfiltered.
func (v *SchoolsView) Schools() []api.School { return v.schools }

// Filter returns the schools whose name, nickname, type or any campus
// contains the query, ignoring case.
func (v *SchoolsView) Filter(query string) []api.School {
	var out []api.School
	for _, s := range v.schools {
		fields := []string{s.Name, s.Nickname, s.Type}
		fields = append(fields, s.Campuses...)
		if matchesQuery(query, fields...) {
			out = append(out, s)
		}
	}
	return out
}

// BeginCreate validates the form and stages it for review. Nothing is
// sent until ConfirmCreate.
func (v *SchoolsView) BeginCreate(form api.CreateSchoolRequest) error {
	form.Name = strings.TrimSpace(form.Name)
	if form.Name == "" {
		return ErrSchoolNameEmpty
	}
	if form.Type == "" {
		return ErrSchoolTypeEmpty
	}
	if !validSchoolType(form.Type) {
		return ErrSchoolTypeWrong
	}
	v.draft = &form
	return nil
}

// Draft returns the staged form for the review screen, nil when no
// creation is in progress.
func (v *SchoolsView) Draft() *api.CreateSchoolRequest { return v.draft }

// ConfirmCreate commits the staged draft to the server and prepends
// the created school to the list.
func (v *SchoolsView) ConfirmCreate(ctx context.Context) (*api.School, error) {
	if v.draft == nil {
		return nil, ErrNoDraft
	}
	if v.confirming {
		return nil, ErrAlreadyConfirmed
	}
	v.confirming = true
	defer func() { v.confirming = false }()

	created, err := v.api.CreateSchool(ctx, v.draft)
	if err != nil {
		return nil, err
	}
	v.draft = nil
	v.schools = append([]api.School{*created}, v.schools...)
	return created, nil
}

// CancelCreate drops the staged draft and returns to the form.
func (v *SchoolsView) CancelCreate() { v.draft = nil }

// Disable permanently deactivates a school and updates the list entry
// in place. Disabling an already disabled school surfaces the
// server's conflict error unchanged.
func (v *SchoolsView) Disable(ctx context.Context, id string) (*api.School, error) {
	updated, err := v.api.DisableSchool(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range v.schools {
		if v.schools[i].ID == id {
			v.schools[i] = *updated
			break
		}
	}
	return updated, nil
}

// Reach fetches the aggregate metrics tab for one school.
func (v *SchoolsView) Reach(ctx context.Context, id string) (*api.Reach, error) {
	return v.api.SchoolReach(ctx, id)
}

// Partners fetches the partners attached to one school.
func (v *SchoolsView) Partners(ctx context.Context, id string) ([]api.Partner, error) {
	return v.api.SchoolPartners(ctx, id)
}

func validSchoolType(t string) bool {
	for _, allowed := range schoolTypes {
		if t == allowed {
			return true
		}
	}
	return false
}
