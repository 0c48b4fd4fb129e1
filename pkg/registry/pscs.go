package registry

import (
	"context"
	"strings"
)

type pscItem struct {
	Name               string   `json:"name"`
	Kind               string   `json:"kind"`
	NaturesOfControl   []string `json:"natures_of_control"`
	NotifiedOn         string   `json:"notified_on"`
	CountryOfResidence string   `json:"country_of_residence"`
	Nationality        string   `json:"nationality"`
	Links              struct {
		Self string `json:"self"`
	} `json:"links"`
}

type pscsResponse struct {
	Items []pscItem `json:"items"`
}

// classifyPSC maps the registry's kind string to a PSCType. The
// corporate-entity check must run before the legal-person check: some kind
// strings contain both substrings.
func classifyPSC(kind string) PSCType {
	switch {
	case strings.Contains(kind, "corporate-entity"):
		return PSCTypeCorporateEntity
	case strings.Contains(kind, "legal-person"):
		return PSCTypeLegalPerson
	default:
		return PSCTypeIndividual
	}
}

// GetPSCs fetches the persons with significant control for a company
// number, in the order the registry lists them.
func (c *Client) GetPSCs(ctx context.Context, companyNumber string) ([]PSC, error) {
	var res pscsResponse
	if err := c.getJSON(ctx, "/company/"+companyNumber+"/persons-with-significant-control", nil, &res); err != nil {
		return nil, err
	}

	pscs := make([]PSC, 0, len(res.Items))
	for _, item := range res.Items {
		pscs = append(pscs, PSC{
			PSCID:              lastPathSegment(item.Links.Self),
			Name:               item.Name,
			PSCType:            classifyPSC(item.Kind),
			NatureOfControl:    item.NaturesOfControl,
			NotifiedOn:         item.NotifiedOn,
			CountryOfResidence: item.CountryOfResidence,
			Nationality:        item.Nationality,
		})
	}
	return pscs, nil
}
