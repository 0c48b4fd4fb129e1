package registry

import "context"

type officerItem struct {
	Name               string `json:"name"`
	OfficerRole        string `json:"officer_role"`
	AppointedOn        string `json:"appointed_on"`
	ResignedOn         string `json:"resigned_on"`
	Nationality        string `json:"nationality"`
	Occupation         string `json:"occupation"`
	CountryOfResidence string `json:"country_of_residence"`
	Links              struct {
		Officer struct {
			Appointments string `json:"appointments"`
		} `json:"officer"`
	} `json:"links"`
}

type officersResponse struct {
	Items []officerItem `json:"items"`
}

// GetOfficers fetches the officers (directors, secretaries, ...) for a
// company number, in the order the registry lists them.
func (c *Client) GetOfficers(ctx context.Context, companyNumber string) ([]Officer, error) {
	var res officersResponse
	if err := c.getJSON(ctx, "/company/"+companyNumber+"/officers", nil, &res); err != nil {
		return nil, err
	}

	officers := make([]Officer, 0, len(res.Items))
	for _, item := range res.Items {
		officers = append(officers, Officer{
			OfficerID:          secondToLastPathSegment(item.Links.Officer.Appointments),
			Name:               item.Name,
			Role:               item.OfficerRole,
			AppointedOn:        item.AppointedOn,
			ResignedOn:         item.ResignedOn,
			Nationality:        item.Nationality,
			Occupation:         item.Occupation,
			CountryOfResidence: item.CountryOfResidence,
		})
	}
	return officers, nil
}
