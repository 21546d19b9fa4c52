package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekthaa/internal/catalog"
	"ekthaa/internal/domain"
	"ekthaa/internal/service"
)

func TestCatalogService_UnknownTable(t *testing.T) {
	svc := service.NewCatalogService()

	_, err := svc.Categories("vehicles")
	assert.ErrorIs(t, err, domain.ErrUnknownTable)
	_, err = svc.Search("vehicles", "x")
	assert.ErrorIs(t, err, domain.ErrUnknownTable)
}

func TestCatalogService_Options(t *testing.T) {
	svc := service.NewCatalogService()

	opts, err := svc.Options(catalog.InventoryTable, "beverages")
	require.NoError(t, err)
	assert.Contains(t, opts, "Juices")

	opts, err = svc.Options(catalog.InventoryTable, "nonexistent")
	require.NoError(t, err)
	assert.NotNil(t, opts)
	assert.Empty(t, opts)
}

func TestCatalogService_Select(t *testing.T) {
	svc := service.NewCatalogService()

	res, err := svc.Select(catalog.InventoryTable, &service.SelectionRequest{Action: service.ActionSelectLevel1, Value: "beverages"})
	require.NoError(t, err)
	assert.Equal(t, catalog.Selection{Level1: "beverages"}, res.Selection)
	assert.True(t, res.Valid)

	res, err = svc.Select(catalog.InventoryTable, &service.SelectionRequest{Current: res.Selection, Action: service.ActionSelectLevel2, Value: "Juices"})
	require.NoError(t, err)
	assert.Equal(t, "Juices", res.Selection.Level2)

	res, err = svc.Select(catalog.InventoryTable, &service.SelectionRequest{Current: res.Selection, Action: service.ActionSelectLevel1, Value: "electronics"})
	require.NoError(t, err)
	assert.Empty(t, res.Selection.Level2, "subcategory dropped when the new category lacks it")
	assert.Contains(t, res.Options, "Power Banks")

	_, err = svc.Select(catalog.InventoryTable, &service.SelectionRequest{Action: "jump"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_Units(t *testing.T) {
	u := service.NewCatalogService().Units()
	assert.Equal(t, "Nos", u.Invoice[0])
	assert.Contains(t, u.Product, "dozen")
}
