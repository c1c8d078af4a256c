package home

import "context"

// Stats are the headline counts shown on the public site.
type Stats struct {
	PublishedWorks int `json:"published_works"`
	Books          int `json:"books"`
	Awards         int `json:"awards"`
}

// Service aggregates across the content domains.
type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}
