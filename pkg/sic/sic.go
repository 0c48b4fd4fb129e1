// Package sic maps UK Standard Industrial Classification codes to
// human-readable descriptions. The table is a static partial mapping of
// codes commonly seen on Companies House records; unknown codes fall back
// to a string carrying the code itself.
package sic

import "fmt"

var descriptions = map[string]string{
	"01110": "Growing of cereals (except rice), leguminous crops and oil seeds",
	"41100": "Development of building projects",
	"47910": "Retail sale via mail order houses or via Internet",
	"56101": "Licensed restaurants",
	"62012": "Business and domestic software development",
	"62020": "Information technology consultancy activities",
	"64191": "Banks",
	"64209": "Other credit granting",
	"66190": "Activities auxiliary to financial intermediation n.e.c.",
	"68100": "Buying and selling of own real estate",
	"68209": "Other letting and operating of own or leased real estate",
	"69201": "Accounting and auditing activities",
	"70100": "Activities of head offices",
	"70229": "Management consultancy activities other than financial management",
	"82990": "Other business support service activities n.e.c.",
	"96090": "Other service activities n.e.c.",
}

// Describe returns the description for a SIC code. Unknown codes yield a
// fallback string containing the code verbatim, never an error.
func Describe(code string) string {
	if desc, ok := descriptions[code]; ok {
		return desc
	}
	return fmt.Sprintf("SIC Code: %s", code)
}

// DescribeAll maps a list of SIC codes to their descriptions, preserving
// order.
func DescribeAll(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		out = append(out, Describe(code))
	}
	return out
}
