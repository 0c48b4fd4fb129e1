package registry

import (
	"context"
	"fmt"
	"strings"
)

type profileResponse struct {
	CompanyNumber     string            `json:"company_number"`
	CompanyName       string            `json:"company_name"`
	CompanyStatus     string            `json:"company_status"`
	DateOfCreation    string            `json:"date_of_creation"`
	Type              string            `json:"type"`
	SICCodes          []string          `json:"sic_codes"`
	RegisteredAddress map[string]string `json:"registered_office_address"`
	BusinessActivity  string            `json:"business_activity"`
}

// GetCompanyProfile fetches the detailed profile for a company number.
// Returns ErrNotFound when the registry has no such company.
func (c *Client) GetCompanyProfile(ctx context.Context, companyNumber string) (*CompanyProfile, error) {
	var res profileResponse
	if err := c.getJSON(ctx, "/company/"+companyNumber, nil, &res); err != nil {
		return nil, err
	}

	// The registry rarely supplies a business activity directly; fall back
	// to a readable listing of the SIC codes when it does not.
	activity := res.BusinessActivity
	if activity == "" && len(res.SICCodes) > 0 {
		activity = fmt.Sprintf("SIC codes: %s", strings.Join(res.SICCodes, ", "))
	}

	return &CompanyProfile{
		CompanyNumber:     res.CompanyNumber,
		CompanyName:       res.CompanyName,
		CompanyStatus:     res.CompanyStatus,
		IncorporationDate: res.DateOfCreation,
		CompanyType:       res.Type,
		SICCodes:          res.SICCodes,
		RegisteredAddress: res.RegisteredAddress,
		BusinessActivity:  activity,
	}, nil
}
