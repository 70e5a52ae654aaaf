package search

import (
	"sort"
	"strings"

	"ledgerdesk/internal/domain"
)

// CatalogSearch scores widgets and enterprises against a keyword
// query. Name hits weigh heaviest, then SKU/alias hits.
type CatalogSearch struct {
	widgets     WidgetLister
	enterprises EnterpriseLister
}

type WidgetLister interface {
	ListWidgets(filter domain.WidgetFilter) ([]*domain.Widget, error)
}

type EnterpriseLister interface {
	ListEnterprises(filter domain.EnterpriseFilter) ([]*domain.Enterprise, error)
}

type Result struct {
	Kind  string  `json:"kind"` // "widget" or "enterprise"
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type Options struct {
	Limit int
}

func NewCatalogSearch(widgets WidgetLister, enterprises EnterpriseLister) *CatalogSearch {
	return &CatalogSearch{
		widgets:     widgets,
		enterprises: enterprises,
	}
}

func (cs *CatalogSearch) Search(query string, opts Options) ([]*Result, error) {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	if queryLower == "" {
		return nil, nil
	}

	var results []*Result

	widgets, err := cs.widgets.ListWidgets(domain.WidgetFilter{})
	if err != nil {
		return nil, err
	}
	for _, widget := range widgets {
		score := nameScore(widget.Name, queryLower)
		if strings.Contains(strings.ToLower(widget.SKU), queryLower) {
			score += 6.0
		}
		if score > 0 {
			results = append(results, &Result{
				Kind:  "widget",
				ID:    widget.ID,
				Label: widget.DisplayName(),
				Score: score,
			})
		}
	}

	enterprises, err := cs.enterprises.ListEnterprises(domain.EnterpriseFilter{})
	if err != nil {
		return nil, err
	}
	for _, enterprise := range enterprises {
		score := nameScore(enterprise.Name, queryLower)
		if strings.Contains(strings.ToLower(enterprise.ContactAlias), queryLower) {
			score += 4.0
		}
		if score > 0 {
			results = append(results, &Result{
				Kind:  "enterprise",
				ID:    enterprise.ID,
				Label: enterprise.DisplayName(),
				Score: score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}

	return results, nil
}

func nameScore(name, query string) float64 {
	nameLower := strings.ToLower(name)
	if !strings.Contains(nameLower, query) {
		return 0.0
	}
	score := 10.0
	if nameLower == query {
		score += 5.0 // Exact match bonus
	}
	return score
}
