package service

import (
	"ekthaa/internal/catalog"
	"ekthaa/internal/domain"
	"ekthaa/internal/invoice"
)

// Selection action names accepted by CatalogService.Select.
const (
	ActionSelectLevel1 = "select_level1"
	ActionSelectLevel2 = "select_level2"
	ActionReset        = "reset"
)

// SelectionRequest applies one action to the current picker state.
type SelectionRequest struct {
	Current catalog.Selection `json:"current"`
	Action  string            `json:"action" binding:"required"`
	Value   string            `json:"value"`
}

// SelectionResult is the reduced state plus the options now on offer.
type SelectionResult struct {
	Selection catalog.Selection `json:"selection"`
	Options   []string          `json:"options"`
	Valid     bool              `json:"valid"`
}

// Units lists the unit vocabularies of invoice rows and inventory products.
type Units struct {
	Invoice []string `json:"invoice"`
	Product []string `json:"product"`
}

// CatalogService resolves category tables for pickers and search.
type CatalogService interface {
	Categories(table string) ([]catalog.Level1, error)
	Options(table, categoryID string) ([]string, error)
	Search(table, query string) ([]catalog.SearchResult, error)
	Select(table string, req *SelectionRequest) (*SelectionResult, error)
	Units() Units
}

type catalogService struct {
	resolve func(name string) (*catalog.Table, error)
}

// NewCatalogService creates a CatalogService over the embedded tables.
func NewCatalogService() CatalogService {
	return &catalogService{resolve: catalog.TableByName}
}

func (s *catalogService) Categories(table string) ([]catalog.Level1, error) {
	t, err := s.resolve(table)
	if err != nil {
		return nil, err
	}
	return t.AllLevel1(), nil
}

func (s *catalogService) Options(table, categoryID string) ([]string, error) {
	t, err := s.resolve(table)
	if err != nil {
		return nil, err
	}
	return t.Level2Options(categoryID), nil
}

func (s *catalogService) Search(table, query string) ([]catalog.SearchResult, error) {
	t, err := s.resolve(table)
	if err != nil {
		return nil, err
	}
	return t.Search(query), nil
}

func (s *catalogService) Select(table string, req *SelectionRequest) (*SelectionResult, error) {
	t, err := s.resolve(table)
	if err != nil {
		return nil, err
	}

	var action catalog.Action
	switch req.Action {
	case ActionSelectLevel1:
		action = catalog.SelectLevel1{ID: req.Value}
	case ActionSelectLevel2:
		action = catalog.SelectLevel2{Value: req.Value}
	case ActionReset:
		action = catalog.Reset{}
	default:
		return nil, &domain.FieldError{Field: "action", Message: "action must be select_level1, select_level2, or reset"}
	}

	next := catalog.Reduce(t, req.Current, action)
	return &SelectionResult{
		Selection: next,
		Options:   t.Level2Options(next.Level1),
		Valid:     next.Valid(t),
	}, nil
}

func (s *catalogService) Units() Units {
	return Units{
		Invoice: append([]string(nil), invoice.Units...),
		Product: append([]string(nil), domain.ProductUnits...),
	}
}
