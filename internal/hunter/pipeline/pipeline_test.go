package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"leadhunter/internal/hunter/pipeline"
	"leadhunter/pkg/browser"
	"leadhunter/pkg/domain"
	"leadhunter/pkg/search"

	mockbrowser "leadhunter/pkg/browser/mock"
	mocksearch "leadhunter/pkg/search/mock"

	"go.uber.org/mock/gomock"
)

// fakeVerifier classifies by lookup table and records which probe ran.
type fakeVerifier struct {
	verdicts map[string]domain.Classification
	fullRuns []string
	mxRuns   []string
}

func (f *fakeVerifier) classify(email string) domain.VerificationResult {
	classification, ok := f.verdicts[email]
	if !ok {
		classification = domain.ClassificationInvalid
	}

	return domain.VerificationResult{Email: email, Classification: classification}
}

func (f *fakeVerifier) Verify(_ context.Context, email string) domain.VerificationResult {
	f.fullRuns = append(f.fullRuns, email)

	return f.classify(email)
}

func (f *fakeVerifier) VerifyMXOnly(_ context.Context, email string) domain.VerificationResult {
	f.mxRuns = append(f.mxRuns, email)

	return f.classify(email)
}

func testOptions() pipeline.Options {
	return pipeline.Options{
		PageTimeout:     time.Second,
		MaxContactPages: 2,
		ProfileFloor:    1,
		ProfileCeiling:  10,
		QueryInterval:   time.Millisecond,
	}
}

func testTarget() domain.ScanTarget {
	return domain.ScanTarget{
		RawDomain:           "acme.com.br",
		Domain:              "acme.com.br",
		FallbackCompanyName: "acme",
	}
}

// expectUnreachableSite makes both scheme attempts fail.
func expectUnreachableSite(pager *mockbrowser.MockPager) {
	pager.EXPECT().Fetch(gomock.Any(), "https://acme.com.br").Return(nil, errors.New("refused"))
	pager.EXPECT().Fetch(gomock.Any(), "http://acme.com.br").Return(nil, errors.New("refused"))
}

// expectNoResults answers every remaining query with an empty result page.
func expectNoResults(engine *mocksearch.MockEngine, name string) {
	engine.EXPECT().Name().Return(name).AnyTimes()
	engine.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func collectLeads(leads *[]domain.Lead) pipeline.Emit {
	return func(_ context.Context, lead domain.Lead) error {
		*leads = append(*leads, lead)

		return nil
	}
}

func TestPipeline_SiteEmailAlwaysAdmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)
	primary := mocksearch.NewMockEngine(ctrl)
	v := &fakeVerifier{verdicts: map[string]domain.Classification{}}

	home := `<html><head><title>Acme Alimentos | Site Oficial</title></head>
	<body>Fale com joao.silva@acme.com.br</body></html>`
	pager.EXPECT().Fetch(gomock.Any(), "https://acme.com.br").
		Return(&browser.Document{URL: "https://acme.com.br", HTML: home}, nil)
	expectNoResults(primary, "google")

	var leads []domain.Lead
	p := pipeline.New(pager, primary, nil, v, testOptions())
	stats, err := p.Run(context.Background(), testTarget(), collectLeads(&leads))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !stats.SiteReachable {
		t.Fatalf("expected reachable site")
	}
	if stats.CompanyName != "Acme Alimentos" {
		t.Fatalf("expected discovered company name, got %q", stats.CompanyName)
	}
	if len(leads) != 1 {
		t.Fatalf("expected one lead, got %d: %+v", len(leads), leads)
	}

	lead := leads[0]
	if lead.Email != "joao.silva@acme.com.br" {
		t.Fatalf("unexpected email %q", lead.Email)
	}
	// published on the company's own site: admitted valid at top confidence
	// even though the probe classified it invalid.
	if lead.Status != domain.ClassificationValid || lead.ConfidenceScore != 100 {
		t.Fatalf("unexpected admission: %+v", lead)
	}
	if lead.Provenance != domain.ProvenanceSiteHome {
		t.Fatalf("unexpected provenance %q", lead.Provenance)
	}
	if lead.FirstName != "Joao" || lead.LastName != "Silva" {
		t.Fatalf("unexpected name split: %+v", lead)
	}
}

func TestPipeline_ShortTitleGuessNotAdopted(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)
	primary := mocksearch.NewMockEngine(ctrl)
	v := &fakeVerifier{verdicts: map[string]domain.Classification{}}

	// "GE" survives boilerplate stripping but is too short to trust as a
	// display name; the fallback name keeps driving the search queries.
	home := `<html><head><title>GE | Home</title></head>
	<body>contato: joao.silva@acme.com.br</body></html>`
	pager.EXPECT().Fetch(gomock.Any(), "https://acme.com.br").
		Return(&browser.Document{URL: "https://acme.com.br", HTML: home}, nil)
	expectNoResults(primary, "google")

	var leads []domain.Lead
	p := pipeline.New(pager, primary, nil, v, testOptions())
	stats, err := p.Run(context.Background(), testTarget(), collectLeads(&leads))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.CompanyName != "" {
		t.Fatalf("expected no discovered company name, got %q", stats.CompanyName)
	}
	if len(leads) != 1 || leads[0].Email != "joao.silva@acme.com.br" {
		t.Fatalf("expected the site email, got %+v", leads)
	}
}

func TestPipeline_ProfileResultVerifiedAndScored(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)
	primary := mocksearch.NewMockEngine(ctrl)
	v := &fakeVerifier{verdicts: map[string]domain.Classification{
		"jane.silva@acme.com.br": domain.ClassificationValid,
	}}

	expectUnreachableSite(pager)
	primary.EXPECT().Name().Return("google").AnyTimes()
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]search.Result{{
		URL:   "https://www.linkedin.com/in/jane-silva",
		Title: "Jane Silva - Marketing Manager - Acme | LinkedIn",
	}}, nil)
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	var leads []domain.Lead
	p := pipeline.New(pager, primary, nil, v, testOptions())
	stats, err := p.Run(context.Background(), testTarget(), collectLeads(&leads))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.SiteReachable {
		t.Fatalf("expected unreachable site")
	}
	if len(leads) != 1 {
		t.Fatalf("expected one lead, got %d: %+v", len(leads), leads)
	}

	lead := leads[0]
	if lead.Email != "jane.silva@acme.com.br" {
		t.Fatalf("unexpected email %q", lead.Email)
	}
	if lead.Status != domain.ClassificationValid || lead.ConfidenceScore != 96 {
		t.Fatalf("unexpected admission: %+v", lead)
	}
	if lead.Provenance != domain.ProvenanceSearchEngine {
		t.Fatalf("unexpected provenance %q", lead.Provenance)
	}
	if lead.RoleTitle != "Marketing Manager" {
		t.Fatalf("unexpected role %q", lead.RoleTitle)
	}
	if lead.ProfileURL != "https://www.linkedin.com/in/jane-silva" {
		t.Fatalf("unexpected profile url %q", lead.ProfileURL)
	}
}

func TestPipeline_RiskyProfileDemoted(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)
	primary := mocksearch.NewMockEngine(ctrl)
	v := &fakeVerifier{verdicts: map[string]domain.Classification{
		"jane.silva@acme.com.br": domain.ClassificationRisky,
	}}

	expectUnreachableSite(pager)
	primary.EXPECT().Name().Return("google").AnyTimes()
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]search.Result{{
		URL:   "https://www.linkedin.com/in/jane-silva",
		Title: "Jane Silva - Marketing Manager | LinkedIn",
	}}, nil)
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	var leads []domain.Lead
	p := pipeline.New(pager, primary, nil, v, testOptions())
	if _, err := p.Run(context.Background(), testTarget(), collectLeads(&leads)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(leads) != 1 {
		t.Fatalf("expected one lead, got %d", len(leads))
	}
	if leads[0].Status != domain.ClassificationRisky || leads[0].ConfidenceScore != 70 {
		t.Fatalf("unexpected admission: %+v", leads[0])
	}
}

func TestPipeline_FallbackEscalationBelowFloor(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)
	primary := mocksearch.NewMockEngine(ctrl)
	fallback := mocksearch.NewMockEngine(ctrl)
	v := &fakeVerifier{verdicts: map[string]domain.Classification{
		"carlos.souza@acme.com.br": domain.ClassificationValid,
	}}

	expectUnreachableSite(pager)
	expectNoResults(primary, "google")
	fallback.EXPECT().Name().Return("duckduckgo").AnyTimes()
	fallback.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]search.Result{{
		URL:   "https://www.linkedin.com/in/carlos-souza",
		Title: "Carlos Souza - Diretor Comercial | LinkedIn",
	}}, nil)
	fallback.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	var leads []domain.Lead
	p := pipeline.New(pager, primary, fallback, v, testOptions())
	if _, err := p.Run(context.Background(), testTarget(), collectLeads(&leads)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(leads) != 1 || leads[0].Email != "carlos.souza@acme.com.br" {
		t.Fatalf("expected fallback-derived lead, got %+v", leads)
	}
}

func TestPipeline_NoFallbackWhenFloorMet(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)
	primary := mocksearch.NewMockEngine(ctrl)
	fallback := mocksearch.NewMockEngine(ctrl)
	v := &fakeVerifier{verdicts: map[string]domain.Classification{
		"jane.silva@acme.com.br": domain.ClassificationValid,
	}}

	expectUnreachableSite(pager)
	primary.EXPECT().Name().Return("google").AnyTimes()
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]search.Result{{
		URL:   "https://www.linkedin.com/in/jane-silva",
		Title: "Jane Silva - Marketing Manager | LinkedIn",
	}}, nil)
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	// fallback must not be queried once the floor is met.
	fallback.EXPECT().Search(gomock.Any(), gomock.Any()).Times(0)

	var leads []domain.Lead
	p := pipeline.New(pager, primary, fallback, v, testOptions())
	if _, err := p.Run(context.Background(), testTarget(), collectLeads(&leads)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPipeline_CeilingStopsQuerying(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)
	primary := mocksearch.NewMockEngine(ctrl)
	v := &fakeVerifier{verdicts: map[string]domain.Classification{
		"jane.silva@acme.com.br": domain.ClassificationValid,
	}}

	options := testOptions()
	options.ProfileCeiling = 1

	expectUnreachableSite(pager)
	primary.EXPECT().Name().Return("google").AnyTimes()
	// one query only: the ceiling is hit after the first profile and the
	// remaining ladder queries are skipped.
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]search.Result{
		{URL: "https://www.linkedin.com/in/jane-silva", Title: "Jane Silva - Marketing Manager | LinkedIn"},
		{URL: "https://www.linkedin.com/in/carlos-souza", Title: "Carlos Souza - Diretor Comercial | LinkedIn"},
	}, nil).Times(1)

	var leads []domain.Lead
	p := pipeline.New(pager, primary, nil, v, options)
	stats, err := p.Run(context.Background(), testTarget(), collectLeads(&leads))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(leads) != 1 || leads[0].Email != "jane.silva@acme.com.br" {
		t.Fatalf("expected only the first profile, got %+v", leads)
	}
	if stats.Candidates != 1+8 { // one profile plus the generic guesses
		t.Fatalf("unexpected candidate count %d", stats.Candidates)
	}
}

func TestPipeline_CollisionWithSiteEmailDropsPermutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)
	primary := mocksearch.NewMockEngine(ctrl)
	v := &fakeVerifier{verdicts: map[string]domain.Classification{
		"jane.silva@acme.com.br": domain.ClassificationValid,
	}}

	home := `<html><head><title>Acme</title></head>
	<body>jane.silva@acme.com.br</body></html>`
	pager.EXPECT().Fetch(gomock.Any(), "https://acme.com.br").
		Return(&browser.Document{URL: "https://acme.com.br", HTML: home}, nil)
	primary.EXPECT().Name().Return("google").AnyTimes()
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]search.Result{{
		URL:   "https://www.linkedin.com/in/jane-silva",
		Title: "Jane Silva - Marketing Manager | LinkedIn",
	}}, nil)
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	var leads []domain.Lead
	p := pipeline.New(pager, primary, nil, v, testOptions())
	if _, err := p.Run(context.Background(), testTarget(), collectLeads(&leads)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the permutation collides with the address already harvested from the
	// site, so only the site lead survives.
	if len(leads) != 1 {
		t.Fatalf("expected one lead, got %+v", leads)
	}
	if leads[0].Provenance != domain.ProvenanceSiteHome || leads[0].ConfidenceScore != 100 {
		t.Fatalf("unexpected admission: %+v", leads[0])
	}
}

func TestPipeline_GenericGuessAdmittedUnlessRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)
	primary := mocksearch.NewMockEngine(ctrl)
	v := &fakeVerifier{verdicts: map[string]domain.Classification{
		"contato@acme.com.br": domain.ClassificationRisky,
	}}

	expectUnreachableSite(pager)
	expectNoResults(primary, "google")

	var leads []domain.Lead
	p := pipeline.New(pager, primary, nil, v, testOptions())
	if _, err := p.Run(context.Background(), testTarget(), collectLeads(&leads)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(leads) != 1 {
		t.Fatalf("expected one generic lead, got %+v", leads)
	}
	lead := leads[0]
	if lead.Email != "contato@acme.com.br" {
		t.Fatalf("unexpected email %q", lead.Email)
	}
	if lead.Provenance != domain.ProvenanceGeneric || lead.ConfidenceScore != 50 {
		t.Fatalf("unexpected admission: %+v", lead)
	}
	if lead.Status != domain.ClassificationRisky {
		t.Fatalf("unexpected status %q", lead.Status)
	}
}

func TestPipeline_ShortPermutationStopsAtMXCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)
	primary := mocksearch.NewMockEngine(ctrl)
	v := &fakeVerifier{verdicts: map[string]domain.Classification{
		"jane@acme.com.br": domain.ClassificationRisky,
	}}

	options := testOptions()
	options.ShortPermutations = true

	expectUnreachableSite(pager)
	primary.EXPECT().Name().Return("google").AnyTimes()
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]search.Result{{
		URL:   "https://www.linkedin.com/in/jane-silva",
		Title: "Jane Silva - Marketing Manager | LinkedIn",
	}}, nil)
	primary.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	var leads []domain.Lead
	p := pipeline.New(pager, primary, nil, v, options)
	if _, err := p.Run(context.Background(), testTarget(), collectLeads(&leads)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// jane.silva@ is probed in full and rejected; the short permutation only
	// gets the MX check and is admitted risky.
	if len(leads) != 1 || leads[0].Email != "jane@acme.com.br" {
		t.Fatalf("expected the short permutation, got %+v", leads)
	}
	if leads[0].ConfidenceScore != 70 {
		t.Fatalf("unexpected confidence %d", leads[0].ConfidenceScore)
	}

	if len(v.mxRuns) != 1 || v.mxRuns[0] != "jane@acme.com.br" {
		t.Fatalf("expected one MX-only probe, got %v", v.mxRuns)
	}
	for _, email := range v.fullRuns {
		if email == "jane@acme.com.br" {
			t.Fatalf("short permutation must not get a full probe")
		}
	}
}

func TestPipeline_ContactPagesCrawled(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)
	primary := mocksearch.NewMockEngine(ctrl)
	v := &fakeVerifier{verdicts: map[string]domain.Classification{}}

	// the notacme host embeds the target domain but sits outside it; neither
	// foreign link may be visited.
	home := `<html><head><title>Acme</title></head><body>
	<a href="/contato">Contato</a>
	<a href="https://notacme.com.br/contato">quase</a>
	<a href="https://outro-site.com/contato">fora</a>
	</body></html>`
	contact := `<html><body>vendas: maria.costa@acme.com.br</body></html>`

	pager.EXPECT().Fetch(gomock.Any(), "https://acme.com.br").
		Return(&browser.Document{URL: "https://acme.com.br", HTML: home}, nil)
	pager.EXPECT().Fetch(gomock.Any(), "https://acme.com.br/contato").
		Return(&browser.Document{URL: "https://acme.com.br/contato", HTML: contact}, nil)
	expectNoResults(primary, "google")

	var leads []domain.Lead
	p := pipeline.New(pager, primary, nil, v, testOptions())
	if _, err := p.Run(context.Background(), testTarget(), collectLeads(&leads)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(leads) != 1 || leads[0].Email != "maria.costa@acme.com.br" {
		t.Fatalf("expected the contact-page email, got %+v", leads)
	}
	if leads[0].Provenance != domain.ProvenanceSiteInternal {
		t.Fatalf("unexpected provenance %q", leads[0].Provenance)
	}
}

func TestPipeline_EmptyTargetIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)
	primary := mocksearch.NewMockEngine(ctrl)
	v := &fakeVerifier{verdicts: map[string]domain.Classification{}}

	p := pipeline.New(pager, primary, nil, v, testOptions())
	stats, err := p.Run(context.Background(), domain.ScanTarget{}, collectLeads(new([]domain.Lead)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Candidates != 0 || stats.Admitted != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestPipeline_EmitFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	pager := mockbrowser.NewMockPager(ctrl)
	primary := mocksearch.NewMockEngine(ctrl)
	v := &fakeVerifier{verdicts: map[string]domain.Classification{}}

	home := `<html><head><title>Acme</title></head><body>jane.silva@acme.com.br</body></html>`
	pager.EXPECT().Fetch(gomock.Any(), "https://acme.com.br").
		Return(&browser.Document{URL: "https://acme.com.br", HTML: home}, nil)
	expectNoResults(primary, "google")

	p := pipeline.New(pager, primary, nil, v, testOptions())
	_, err := p.Run(context.Background(), testTarget(), func(context.Context, domain.Lead) error {
		return errors.New("db down")
	})
	if err == nil {
		t.Fatalf("expected emit failure to abort the run")
	}
}
