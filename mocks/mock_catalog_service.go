package mocks

import (
	"github.com/stretchr/testify/mock"

	"ekthaa/internal/catalog"
	"ekthaa/internal/service"
)

// MockCatalogService is a mock implementation of service.CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Categories(table string) ([]catalog.Level1, error) {
	args := m.Called(table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Level1), args.Error(1)
}

func (m *MockCatalogService) Options(table, categoryID string) ([]string, error) {
	args := m.Called(table, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) Search(table, query string) ([]catalog.SearchResult, error) {
	args := m.Called(table, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.SearchResult), args.Error(1)
}

func (m *MockCatalogService) Select(table string, req *service.SelectionRequest) (*service.SelectionResult, error) {
	args := m.Called(table, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SelectionResult), args.Error(1)
}

func (m *MockCatalogService) Units() service.Units {
	args := m.Called()
	return args.Get(0).(service.Units)
}
