package views

import (
	"context"
	"errors"
	"strings"

	"healthreach_backend/pkg/client/api"
)

// ErrPartnerNameEmpty means the partner form was submitted without a
// name.
var ErrPartnerNameEmpty = errors.New("partner name is required")

// PartnersView backs the partners list screen.
type PartnersView struct {
	api  *api.Client
	opts Options

	partners []api.Partner
	source   Source
}

func NewPartnersView(apiClient *api.Client, opts Options) *PartnersView {
	return &PartnersView{api: apiClient, opts: opts}
}

// Load fetches all partners.
func (v *PartnersView) Load(ctx context.Context) error {
	partners, err := v.api.ListPartners(ctx)
	if err != nil {
		if v.opts.DemoFallback {
			v.partners = DemoPartners()
			v.source = SourceDemo
			return nil
		}
		return err
	}
	v.partners = partners
	v.source = SourceLive
	return nil
}

func (v *PartnersView) Source() Source { return v.source }

// Partners returns the current list unfiltered.
func (v *PartnersView) Partners() []api.Partner { return v.partners }

// Filter matches name, category or location, ignoring case.
func (v *PartnersView) Filter(query string) []api.Partner {
	var out []api.Partner
	for _, p := range v.partners {
		if matchesQuery(query, p.Name, p.Category, p.Location) {
			out = append(out, p)
		}
	}
	return out
}

// Create registers a partner and prepends it to the list.
func (v *PartnersView) Create(ctx context.Context, form api.CreatePartnerRequest) (*api.Partner, error) {
	form.Name = strings.TrimSpace(form.Name)
	if form.Name == "" {
		return nil, ErrPartnerNameEmpty
	}
	created, err := v.api.CreatePartner(ctx, &form)
	if err != nil {
		return nil, err
	}
	v.partners = append([]api.Partner{*created}, v.partners...)
	return created, nil
}
