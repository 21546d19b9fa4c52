package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"khata", "--credentials", filepath.Join(t.TempDir(), "creds.json")}, args...))
	return out.String(), err
}

func TestCategoriesOptions(t *testing.T) {
	out, err := runApp(t, "categories", "options", "--table", "inventory", "beverages")
	require.NoError(t, err)
	assert.Contains(t, out, "Juices\n")
}

func TestCategoriesSearch(t *testing.T) {
	out, err := runApp(t, "categories", "search", "soap")
	require.NoError(t, err)
	assert.Contains(t, out, "Personal Care > Soaps & Bodywash")
}

func TestInvoiceTotals(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":[{"quantity":"2","rate":"100"}],"cgst_rate":"9","sgst_rate":"9"}`), 0o600))

	out, err := runApp(t, "invoice", "totals", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Subtotal     200.00")
	assert.Contains(t, out, "Grand Total  236.00")
}

func TestRemind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/dashboard":
			_ = json.NewEncoder(w).Encode(map[string]any{"business": map[string]any{"id": "b1", "name": "Sri Traders"}})
		case "/api/customers":
			_ = json.NewEncoder(w).Encode(map[string]any{"customers": []map[string]any{
				{"id": "c1", "name": "Asha", "phone_number": "9876543210", "balance": 1500},
				{"id": "c2", "name": "Ravi", "phone_number": "9123456780", "balance": 0},
			}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	out, err := runApp(t, "--base-url", srv.URL+"/api", "remind")
	require.NoError(t, err)
	assert.Contains(t, out, "Asha\t₹1,500.00\thttps://wa.me/919876543210?text=")
	assert.NotContains(t, out, "Ravi")
}

func TestCustomersAdd_ValidatesLocally(t *testing.T) {
	_, err := runApp(t, "customers", "add", "--name", "Asha", "--phone", "12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Phone number must be exactly 10 digits")
}

func backend(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

func TestProductsAdd_ValidatesLocally(t *testing.T) {
	_, err := runApp(t, "products", "add", "--price", "10")
	require.Error(t, err)
	assert.Equal(t, "Please fill all required fields: Name, Category", err.Error())

	_, err = runApp(t, "products", "add", "--name", "Tea", "--category", "Beverages", "--stock", "1.5", "--price", "10")
	require.Error(t, err)
	assert.Equal(t, "Stock quantity must be a valid non-negative number", err.Error())
}

func TestProductsAdd_SendsRequest(t *testing.T) {
	var got map[string]any
	url := backend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST /api/product", r.Method+" "+r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"product":{"id":"p1","name":"Mango Juice"}}`)
	})

	out, err := runApp(t, "--base-url", url, "products", "add",
		"--name", "Mango Juice", "--category", "Beverages", "--subcategory", "Juices",
		"--stock", "24", "--unit", "liter", "--price", "45.50")
	require.NoError(t, err)
	assert.Contains(t, out, "Product added successfully")
	assert.Equal(t, "Juices", got["subcategory"])
	assert.EqualValues(t, 24, got["stock_quantity"])
	assert.EqualValues(t, 45.5, got["price"])
	assert.EqualValues(t, 10, got["low_stock_threshold"])
}

func TestProductsList_JSON(t *testing.T) {
	url := backend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Snacks", r.URL.Query().Get("category"))
		_, _ = io.WriteString(w, `{"products":[{"id":"p1","name":"Chips","category":"Snacks","stock_quantity":3,"unit":"packet","price":20,"is_low_stock":true}],"count":1}`)
	})

	out, err := runApp(t, "--base-url", url, "--json", "products", "list", "--category", "Snacks")
	require.NoError(t, err)
	var products []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Chips", products[0]["name"])
}

func TestTransactionsAdd_WithBillIsMultipart(t *testing.T) {
	bill := filepath.Join(t.TempDir(), "bill.png")
	require.NoError(t, os.WriteFile(bill, []byte("\x89PNG\r\n\x1a\nfake"), 0o600))

	url := backend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transaction", r.URL.Path)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, "c1", r.FormValue("customer_id"))
		assert.Equal(t, "payment", r.FormValue("type"))
		assert.Equal(t, "250", r.FormValue("amount"))
		f, hdr, err := r.FormFile("bill_image")
		if assert.NoError(t, err) {
			defer f.Close()
			assert.Equal(t, "bill.png", hdr.Filename)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"transaction":{"id":"t1"}}`)
	})

	out, err := runApp(t, "--base-url", url, "transactions", "add",
		"--customer", "c1", "--type", "payment", "--amount", "250", "--bill", bill)
	require.NoError(t, err)
	assert.Contains(t, out, "Transaction added successfully")
}

func TestTransactionsAdd_RejectsNonPositiveAmount(t *testing.T) {
	_, err := runApp(t, "transactions", "add", "--customer", "c1", "--amount", "-5")
	require.Error(t, err)
	assert.Equal(t, "Please enter a valid amount", err.Error())
}

func TestTransactionsAdd_ServerMessage(t *testing.T) {
	url := backend(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"Customer not found"}`)
	})

	_, err := runApp(t, "--base-url", url, "transactions", "add", "--customer", "nope", "--amount", "10")
	require.Error(t, err)
	assert.Equal(t, "Customer not found", err.Error())
}

func TestRecurringAdd(t *testing.T) {
	_, err := runApp(t, "recurring", "add", "--customer", "c1", "--amount", "100", "--frequency", "yearly")
	require.Error(t, err)
	assert.Equal(t, "Frequency must be daily, weekly, or monthly", err.Error())

	var got map[string]any
	url := backend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recurring-transaction", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"recurring_transaction":{"id":"r1"}}`)
	})
	out, err := runApp(t, "--base-url", url, "recurring", "add", "--customer", "c1", "--amount", "100", "--frequency", "weekly")
	require.NoError(t, err)
	assert.Contains(t, out, "Recurring transaction created")
	assert.Equal(t, "weekly", got["frequency"])
}

func TestCustomersList_JSON(t *testing.T) {
	url := backend(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"customers":[{"id":"c1","name":"Asha","balance":1500}]}`)
	})

	out, err := runApp(t, "--base-url", url, "--json", "customers", "list")
	require.NoError(t, err)
	var customers []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &customers))
	require.Len(t, customers, 1)
	assert.EqualValues(t, 1500, customers[0]["balance"])
}

func TestVouchersListAndOffersToggle(t *testing.T) {
	url := backend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /api/vouchers":
			_, _ = io.WriteString(w, `{"vouchers":[{"$id":"v1","code":"DIWALI10","discount":10,"valid_until":"2026-11-30","is_active":true}]}`)
		case "PUT /api/offer/o1/toggle":
			_, _ = io.WriteString(w, `{"is_active":false}`)
		default:
			http.NotFound(w, r)
		}
	})

	out, err := runApp(t, "--base-url", url, "vouchers", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "DIWALI10")
	assert.Contains(t, out, "10%")

	out, err = runApp(t, "--base-url", url, "offers", "toggle", "o1")
	require.NoError(t, err)
	assert.Contains(t, out, "offer o1 is now inactive")
}

func TestInvoiceTotals_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":[{"quantity":2,"rate":100}],"cgst_rate":9,"sgst_rate":9}`), 0o600))

	out, err := runApp(t, "--json", "invoice", "totals", "--file", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"subtotal":"200.00","cgst_amount":"18.00","sgst_amount":"18.00","grand_total":"236.00"}`, out)
}
