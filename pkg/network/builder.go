package network

import (
	"context"
	"errors"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/corpgraph/backend/pkg/logger"
	"github.com/corpgraph/backend/pkg/registry"
)

// Registry is the slice of the registry client the builder consumes.
type Registry interface {
	SearchCompanies(ctx context.Context, query string, itemsPerPage int) ([]registry.SearchResult, error)
	GetCompanyProfile(ctx context.Context, companyNumber string) (*registry.CompanyProfile, error)
	GetOfficers(ctx context.Context, companyNumber string) ([]registry.Officer, error)
	GetPSCs(ctx context.Context, companyNumber string) ([]registry.PSC, error)
}

const (
	defaultMaxCompanies    = 10
	maxCompaniesUpperBound = 10
	defaultParallelFetches = 3
)

// Builder expands a seed search query into a company relationship graph.
// It holds no state across builds; every Build call starts from scratch.
//
// A Builder should be created with NewBuilder.
type Builder struct {
	registry        Registry
	maxCompanies    int
	parallelFetches int
}

// NewBuilderParams configures a Builder.
//
// MaxCompanies caps how many search candidates one build expands
// (bounded at 10). ParallelFetches controls how many candidates are
// fetched concurrently; the registry client's shared rate limiter keeps
// aggregate request spacing regardless.
type NewBuilderParams struct {
	Registry        Registry
	MaxCompanies    int
	ParallelFetches int
}

// NewBuilder creates a network builder over the given registry.
func NewBuilder(params NewBuilderParams) *Builder {
	maxCompanies := params.MaxCompanies
	if maxCompanies <= 0 || maxCompanies > maxCompaniesUpperBound {
		maxCompanies = defaultMaxCompanies
	}
	parallel := params.ParallelFetches
	if parallel <= 0 {
		parallel = defaultParallelFetches
	}
	return &Builder{
		registry:        params.Registry,
		maxCompanies:    maxCompanies,
		parallelFetches: parallel,
	}
}

// companyData holds the fetch results for one candidate, index-aligned
// with the candidate list so assembly can run in discovery order.
type companyData struct {
	profile  *registry.CompanyProfile
	officers []registry.Officer
	pscs     []registry.PSC
}

// Build searches the registry for query and assembles a relationship
// graph from the top candidates. maxCompanies caps the expansion for this
// build; values outside (0, builder max] fall back to the builder's cap.
//
// Registry failures never fail a build: a failed search yields an empty
// graph, a failed profile fetch skips that candidate entirely, and failed
// officer or PSC fetches leave that company with no person edges. The
// only error returned is context cancellation.
func (b *Builder) Build(ctx context.Context, query string, maxCompanies int) (*Graph, error) {
	if maxCompanies <= 0 || maxCompanies > b.maxCompanies {
		maxCompanies = b.maxCompanies
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	graph := &Graph{
		ID:    id,
		Nodes: []Node{},
		Edges: []Edge{},
		Metadata: Metadata{
			SearchQuery: query,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		},
	}

	results, err := b.registry.SearchCompanies(ctx, query, maxCompanies)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		logger.Warn("Network build search failed, returning empty graph", "query", query, "err", err)
		return graph, nil
	}
	if len(results) == 0 {
		return graph, nil
	}

	candidates := dedupeCandidates(results, maxCompanies)

	data := make([]companyData, len(candidates))
	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(b.parallelFetches)
	for i, candidate := range candidates {
		eg.Go(func() error {
			return b.fetchCompany(gCtx, candidate.CompanyNumber, &data[i])
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	people := make(map[PersonKey]struct{})
	controllers := make(map[PSCKey]struct{})

	for i, candidate := range candidates {
		profile := data[i].profile
		if profile == nil {
			continue
		}

		companyID := companyNodeID(candidate.CompanyNumber)
		graph.Nodes = append(graph.Nodes, Node{
			ID:                companyID,
			Label:             profile.CompanyName,
			Type:              NodeTypeCompany,
			Size:              companyNodeSize,
			Color:             companyNodeColor,
			CompanyNumber:     candidate.CompanyNumber,
			Status:            profile.CompanyStatus,
			IncorporationDate: profile.IncorporationDate,
			SICCodes:          profile.SICCodes,
			BusinessActivity:  profile.BusinessActivity,
		})

		for _, officer := range data[i].officers {
			key := PersonKeyFor(officer.Name)
			if _, seen := people[key]; !seen {
				people[key] = struct{}{}
				graph.Nodes = append(graph.Nodes, Node{
					ID:          key.NodeID(),
					Label:       officer.Name,
					Type:        NodeTypePerson,
					Size:        personNodeSize,
					Color:       personNodeColor,
					Role:        officer.Role,
					Nationality: officer.Nationality,
					Occupation:  officer.Occupation,
				})
			}
			graph.Edges = append(graph.Edges, Edge{
				Source:       key.NodeID(),
				Target:       companyID,
				Relationship: EdgeTypeDirectorOf,
				Role:         officer.Role,
				AppointedOn:  officer.AppointedOn,
			})
		}

		for _, psc := range data[i].pscs {
			key := PSCKeyFor(psc.Name)
			if _, seen := controllers[key]; !seen {
				controllers[key] = struct{}{}
				graph.Nodes = append(graph.Nodes, Node{
					ID:                 key.NodeID(),
					Label:              psc.Name,
					Type:               NodeTypePSC,
					Size:               pscNodeSize,
					Color:              pscNodeColor,
					PSCType:            string(psc.PSCType),
					Nationality:        psc.Nationality,
					CountryOfResidence: psc.CountryOfResidence,
				})
			}
			graph.Edges = append(graph.Edges, Edge{
				Source:          key.NodeID(),
				Target:          companyID,
				Relationship:    EdgeTypeControls,
				NatureOfControl: psc.NatureOfControl,
				NotifiedOn:      psc.NotifiedOn,
			})
		}
	}

	for _, node := range graph.Nodes {
		switch node.Type {
		case NodeTypeCompany:
			graph.Metadata.TotalCompanies++
		case NodeTypePerson, NodeTypePSC:
			graph.Metadata.TotalPeople++
		}
	}

	return graph, nil
}

// dedupeCandidates drops search hits with empty or repeated company
// numbers and caps the list, preserving discovery order.
func dedupeCandidates(results []registry.SearchResult, maxCompanies int) []registry.SearchResult {
	seen := make(map[string]struct{})
	var candidates []registry.SearchResult
	for _, result := range results {
		if len(candidates) >= maxCompanies {
			break
		}
		if result.CompanyNumber == "" {
			continue
		}
		if _, ok := seen[result.CompanyNumber]; ok {
			continue
		}
		seen[result.CompanyNumber] = struct{}{}
		candidates = append(candidates, result)
	}
	return candidates
}

// fetchCompany loads profile, officers, and PSCs for one candidate. A
// failed profile fetch leaves the slot empty so assembly skips the
// candidate; failed officer or PSC fetches degrade to empty lists. Only
// context cancellation propagates.
func (b *Builder) fetchCompany(ctx context.Context, companyNumber string, out *companyData) error {
	profile, err := b.registry.GetCompanyProfile(ctx, companyNumber)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		logger.Warn("Skipping company, profile fetch failed", "company_number", companyNumber, "err", err)
		return nil
	}
	out.profile = profile

	officers, err := b.registry.GetOfficers(ctx, companyNumber)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		logger.Debug("Officer fetch failed, treating as empty", "company_number", companyNumber, "err", err)
	}
	out.officers = officers

	pscs, err := b.registry.GetPSCs(ctx, companyNumber)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		logger.Debug("PSC fetch failed, treating as empty", "company_number", companyNumber, "err", err)
	}
	out.pscs = pscs

	return nil
}
