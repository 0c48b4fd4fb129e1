package network

import "strings"

// Identity keys deduplicate people within a single build. Officers and
// PSCs use distinct key types with distinct node ID prefixes, so a PSC and
// an officer sharing a raw name can never collapse into one node.
//
// Matching is exact normalized-name equality: two different real people
// with the same normalized name collapse into one node, and spelling
// variants of one person do not.

// PersonKey identifies an officer by normalized name.
type PersonKey string

// PSCKey identifies a person with significant control by normalized name.
type PSCKey string

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// PersonKeyFor derives the officer identity key for a raw name.
func PersonKeyFor(name string) PersonKey {
	return PersonKey(normalizeName(name))
}

// PSCKeyFor derives the PSC identity key for a raw name.
func PSCKeyFor(name string) PSCKey {
	return PSCKey(normalizeName(name))
}

// NodeID returns the graph node ID for this officer key.
func (k PersonKey) NodeID() string {
	return "person_" + string(k)
}

// NodeID returns the graph node ID for this PSC key.
func (k PSCKey) NodeID() string {
	return "psc_" + string(k)
}

func companyNodeID(companyNumber string) string {
	return "company_" + companyNumber
}
