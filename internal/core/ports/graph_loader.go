package ports

import "go.trai.ch/rmake/internal/core/domain"

// GraphLoader produces a Graph for a rule file, consulting (and maintaining)
// whatever on-disk cache it chooses to keep alongside that rule file.
//
//go:generate mockgen -source=graph_loader.go -destination=mocks/mock_graph_loader.go -package=mocks
type GraphLoader interface {
	Load(ruleFilePath string) (*domain.Graph, error)
}
