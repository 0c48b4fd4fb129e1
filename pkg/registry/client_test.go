package registry

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(NewClientParams{
		APIKey:             "test-key",
		BaseURL:            srv.URL,
		MinRequestInterval: time.Millisecond,
		MaxRetries:         2,
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(NewClientParams{})
	if err == nil {
		t.Fatal("expected error for missing API key, got nil")
	}
}

func TestClient_AuthAndHeaders(t *testing.T) {
	var gotUser, gotPass string
	var gotOK bool
	var gotAccept, gotAgent string

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotOK = r.BasicAuth()
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		json.NewEncoder(w).Encode(searchResponse{})
	}))

	if _, err := client.SearchCompanies(context.Background(), "acme", 5); err != nil {
		t.Fatalf("SearchCompanies failed: %v", err)
	}
	if !gotOK || gotUser != "test-key" || gotPass != "" {
		t.Fatalf("expected basic auth (test-key, empty), got (%q, %q, ok=%v)", gotUser, gotPass, gotOK)
	}
	if gotAccept != "application/json" {
		t.Fatalf("expected Accept application/json, got %q", gotAccept)
	}
	if gotAgent != userAgent {
		t.Fatalf("expected User-Agent %q, got %q", userAgent, gotAgent)
	}
}

func TestSearchCompanies_ZeroMatches(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [], "total_results": 0}`))
	}))

	results, err := client.SearchCompanies(context.Background(), "no such company", 20)
	if err != nil {
		t.Fatalf("expected nil error for zero matches, got %v", err)
	}
	if results == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(results) != 0 {
		t.Fatalf("expected 0 results, got %d", len(results))
	}
}

func TestSearchCompanies_MissingItemsField(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	results, err := client.SearchCompanies(context.Background(), "acme", 20)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Fatalf("expected empty slice, got %v", results)
	}
}

func TestSearchCompanies_MapsItems(t *testing.T) {
	var gotQuery, gotPerPage string
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotPerPage = r.URL.Query().Get("items_per_page")
		w.Write([]byte(`{"items": [
			{"title": "ACME LTD", "company_number": "01234567", "company_status": "active", "company_type": "ltd", "address_snippet": "1 Main St, London"}
		]}`))
	}))

	results, err := client.SearchCompanies(context.Background(), "acme", 5)
	if err != nil {
		t.Fatalf("SearchCompanies failed: %v", err)
	}
	if gotQuery != "acme" || gotPerPage != "5" {
		t.Fatalf("unexpected query params q=%q items_per_page=%q", gotQuery, gotPerPage)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	r := results[0]
	if r.Title != "ACME LTD" || r.CompanyNumber != "01234567" || r.CompanyStatus != "active" {
		t.Fatalf("unexpected result %+v", r)
	}
}

func TestSearchCompanies_TransportError(t *testing.T) {
	calls := 0
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.SearchCompanies(context.Background(), "acme", 20)
	if err == nil {
		t.Fatal("expected error for 500 response, got nil")
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts (retry budget), got %d", calls)
	}
}

func TestSearchCompanies_RetriesTransientFailure(t *testing.T) {
	calls := 0
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"items": [{"company_number": "01234567"}]}`))
	}))

	results, err := client.SearchCompanies(context.Background(), "acme", 20)
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result after retry, got %d", len(results))
	}
}

func TestGetCompanyProfile_Mapping(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/company/01234567" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"company_number": "01234567",
			"company_name": "ACME LTD",
			"company_status": "active",
			"date_of_creation": "2001-02-03",
			"type": "ltd",
			"sic_codes": ["70100", "64191"],
			"registered_office_address": {"address_line_1": "1 Main St", "locality": "London", "postal_code": "EC1A 1AA"}
		}`))
	}))

	profile, err := client.GetCompanyProfile(context.Background(), "01234567")
	if err != nil {
		t.Fatalf("GetCompanyProfile failed: %v", err)
	}
	if profile.CompanyName != "ACME LTD" || profile.CompanyStatus != "active" {
		t.Fatalf("unexpected profile %+v", profile)
	}
	if profile.IncorporationDate != "2001-02-03" {
		t.Fatalf("expected incorporation date from date_of_creation, got %q", profile.IncorporationDate)
	}
	if len(profile.SICCodes) != 2 {
		t.Fatalf("expected 2 SIC codes, got %v", profile.SICCodes)
	}
	if profile.BusinessActivity != "SIC codes: 70100, 64191" {
		t.Fatalf("expected synthesized business activity, got %q", profile.BusinessActivity)
	}
	if profile.RegisteredAddress["locality"] != "London" {
		t.Fatalf("unexpected address %v", profile.RegisteredAddress)
	}
}

func TestGetCompanyProfile_BusinessActivityFromRegistry(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"company_number": "01234567",
			"company_name": "ACME LTD",
			"business_activity": "Making anvils",
			"sic_codes": ["70100"]
		}`))
	}))

	profile, err := client.GetCompanyProfile(context.Background(), "01234567")
	if err != nil {
		t.Fatalf("GetCompanyProfile failed: %v", err)
	}
	if profile.BusinessActivity != "Making anvils" {
		t.Fatalf("expected the registry-supplied activity to win, got %q", profile.BusinessActivity)
	}
}

func TestGetCompanyProfile_NoActivityNoSICCodes(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"company_number": "01234567", "company_name": "ACME LTD"}`))
	}))

	profile, err := client.GetCompanyProfile(context.Background(), "01234567")
	if err != nil {
		t.Fatalf("GetCompanyProfile failed: %v", err)
	}
	if profile.BusinessActivity != "" {
		t.Fatalf("expected empty business activity, got %q", profile.BusinessActivity)
	}
}

func TestGetCompanyProfile_NotFound(t *testing.T) {
	calls := 0
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetCompanyProfile(context.Background(), "99999999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected no retry on 404, got %d calls", calls)
	}
}

func TestGetOfficers_Mapping(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/company/01234567/officers" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"items": [
			{
				"name": "DOE, Jane",
				"officer_role": "director",
				"appointed_on": "2015-06-01",
				"nationality": "British",
				"occupation": "Company Director",
				"country_of_residence": "England",
				"links": {"officer": {"appointments": "/officers/aBcD123xYz/appointments"}}
			},
			{"name": "SMITH, John", "officer_role": "secretary"}
		]}`))
	}))

	officers, err := client.GetOfficers(context.Background(), "01234567")
	if err != nil {
		t.Fatalf("GetOfficers failed: %v", err)
	}
	if len(officers) != 2 {
		t.Fatalf("expected 2 officers, got %d", len(officers))
	}
	if officers[0].OfficerID != "aBcD123xYz" {
		t.Fatalf("expected officer ID from appointments link, got %q", officers[0].OfficerID)
	}
	if officers[0].Role != "director" || officers[0].AppointedOn != "2015-06-01" {
		t.Fatalf("unexpected officer %+v", officers[0])
	}
	if officers[1].OfficerID != "" {
		t.Fatalf("expected empty officer ID without appointments link, got %q", officers[1].OfficerID)
	}
}

func TestGetOfficers_EmptyList(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))

	officers, err := client.GetOfficers(context.Background(), "01234567")
	if err != nil {
		t.Fatalf("GetOfficers failed: %v", err)
	}
	if len(officers) != 0 {
		t.Fatalf("expected 0 officers, got %d", len(officers))
	}
}

func TestClassifyPSC(t *testing.T) {
	tests := []struct {
		name string
		kind string
		want PSCType
	}{
		{"Individual", "individual-person-with-significant-control", PSCTypeIndividual},
		{"CorporateEntity", "corporate-entity-person-with-significant-control", PSCTypeCorporateEntity},
		{"LegalPerson", "legal-person-person-with-significant-control", PSCTypeLegalPerson},
		{"CorporateBeforeLegal", "corporate-entity-beneficial-owner-legal-person", PSCTypeCorporateEntity},
		{"EmptyKind", "", PSCTypeIndividual},
		{"UnknownKind", "super-secure-person-with-significant-control", PSCTypeIndividual},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyPSC(tc.kind)
			if got != tc.want {
				t.Fatalf("classifyPSC(%q) = %q, want %q", tc.kind, got, tc.want)
			}
		})
	}
}

func TestGetPSCs_Mapping(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/company/01234567/persons-with-significant-control" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"items": [
			{
				"name": "Jane Doe",
				"kind": "individual-person-with-significant-control",
				"natures_of_control": ["ownership-of-shares-75-to-100-percent"],
				"notified_on": "2016-04-06",
				"country_of_residence": "England",
				"nationality": "British",
				"links": {"self": "/company/01234567/persons-with-significant-control/individual/pscId99"}
			}
		]}`))
	}))

	pscs, err := client.GetPSCs(context.Background(), "01234567")
	if err != nil {
		t.Fatalf("GetPSCs failed: %v", err)
	}
	if len(pscs) != 1 {
		t.Fatalf("expected 1 PSC, got %d", len(pscs))
	}
	p := pscs[0]
	if p.PSCID != "pscId99" {
		t.Fatalf("expected PSC ID from self link, got %q", p.PSCID)
	}
	if p.PSCType != PSCTypeIndividual {
		t.Fatalf("expected individual, got %q", p.PSCType)
	}
	if len(p.NatureOfControl) != 1 || p.NotifiedOn != "2016-04-06" {
		t.Fatalf("unexpected PSC %+v", p)
	}
}
