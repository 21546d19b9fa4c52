package domain

// User is the authenticated business account returned by login and register.
type User struct {
	ID           string `json:"id"`
	Phone        string `json:"phone"`
	UserType     string `json:"user_type"`
	BusinessID   string `json:"business_id"`
	BusinessName string `json:"business_name"`
	BusinessPIN  string `json:"business_pin"`
}

// AuthResponse is the body of a successful login or registration.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// RegisterInput is the registration request body.
type RegisterInput struct {
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
}

// Business is the seller profile a khata belongs to.
type Business struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Phone             string   `json:"phone,omitempty"`
	PhoneNumber       string   `json:"phone_number,omitempty"`
	Description       string   `json:"description,omitempty"`
	Address           string   `json:"address,omitempty"`
	City              string   `json:"city,omitempty"`
	State             string   `json:"state,omitempty"`
	Pincode           string   `json:"pincode,omitempty"`
	GSTNumber         string   `json:"gst_number,omitempty"`
	BusinessType      string   `json:"business_type,omitempty"`
	Category          string   `json:"category,omitempty"`
	Subcategory       string   `json:"subcategory,omitempty"`
	AccessPIN         string   `json:"access_pin,omitempty"`
	ProfilePhotoURL   string   `json:"profile_photo_url,omitempty"`
	Keywords          []string `json:"keywords,omitempty"`
	OperatingDays     []string `json:"operating_days,omitempty"`
	TotalCustomers    int      `json:"total_customers,omitempty"`
	TotalTransactions int      `json:"total_transactions,omitempty"`
}

// ProfileInput carries profile fields to update. Empty fields are not sent.
type ProfileInput struct {
	Name         string    `json:"name,omitempty"`
	Description  string    `json:"description,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	ProfilePhoto *FilePart `json:"-"`
}

// Customer is a khata counterparty with a running balance.
type Customer struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Phone            string  `json:"phone,omitempty"`
	PhoneNumber      string  `json:"phone_number,omitempty"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transaction_count,omitempty"`
}

// CustomerInput is the body for adding or updating a customer.
type CustomerInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Transaction is a single credit or payment entry.
type Transaction struct {
	ID              string          `json:"id"`
	DocumentID      string          `json:"$id,omitempty"`
	CustomerID      string          `json:"customer_id,omitempty"`
	CustomerName    string          `json:"customer_name,omitempty"`
	Amount          float64         `json:"amount"`
	TransactionType TransactionType `json:"transaction_type"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       string          `json:"created_at,omitempty"`
	ReceiptImageURL string          `json:"receipt_image_url,omitempty"`
}

// TransactionInput is the body for recording a transaction. BillPhoto switches
// the request to multipart.
type TransactionInput struct {
	CustomerID string          `json:"customer_id"`
	Type       TransactionType `json:"type"`
	Amount     float64         `json:"amount"`
	Notes      string          `json:"notes"`
	BillPhoto  *FilePart       `json:"-"`
}

// RecurringTransaction is a scheduled credit entry.
type RecurringTransaction struct {
	ID                string    `json:"id"`
	CustomerID        string    `json:"customer_id"`
	CustomerName      string    `json:"customer_name,omitempty"`
	Amount            float64   `json:"amount"`
	Frequency         Frequency `json:"frequency"`
	Notes             string    `json:"notes,omitempty"`
	IsActive          bool      `json:"is_active"`
	NextExecutionDate string    `json:"next_execution_date,omitempty"`
	CreatedAt         string    `json:"created_at,omitempty"`
}

// RecurringInput is the body for creating or updating a recurring transaction.
type RecurringInput struct {
	CustomerID string    `json:"customer_id"`
	Amount     float64   `json:"amount"`
	Frequency  Frequency `json:"frequency"`
	Notes      string    `json:"notes"`
}

// Product is an inventory item in the business catalogue.
type Product struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	Category          string  `json:"category"`
	Subcategory       string  `json:"subcategory,omitempty"`
	HSNCode           string  `json:"hsn_code,omitempty"`
	StockQuantity     int     `json:"stock_quantity"`
	Unit              string  `json:"unit"`
	Price             float64 `json:"price"`
	ImageURL          string  `json:"image_url,omitempty"`
	IsPublic          bool    `json:"is_public"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	IsLowStock        bool    `json:"is_low_stock,omitempty"`
	CreatedAt         string  `json:"created_at,omitempty"`
	UpdatedAt         string  `json:"updated_at,omitempty"`
}

// ProductInput is the body for adding or updating a product. Image switches the
// request to multipart.
type ProductInput struct {
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	Subcategory       string    `json:"subcategory,omitempty"`
	HSNCode           string    `json:"hsn_code,omitempty"`
	StockQuantity     int       `json:"stock_quantity"`
	Unit              string    `json:"unit"`
	Price             float64   `json:"price"`
	IsPublic          bool      `json:"is_public"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	Image             *FilePart `json:"-"`
}

// ProductFilter narrows a product listing.
type ProductFilter struct {
	Category string
	Search   string
	IsPublic *bool
}

// Reminder is a prepared payment reminder for one customer.
type Reminder struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name,omitempty"`
	CustomerName string  `json:"customer_name,omitempty"`
	PhoneNumber  string  `json:"phone_number,omitempty"`
	Balance      float64 `json:"balance"`
	WhatsAppURL  string  `json:"whatsapp_url"`
	Message      string  `json:"message,omitempty"`
}

// BulkReminders is the list of customers with an outstanding balance.
type BulkReminders struct {
	Customers    []Reminder `json:"customers"`
	Count        int        `json:"count"`
	BusinessName string     `json:"business_name"`
}

// DashboardSummary holds the khata-wide aggregates.
type DashboardSummary struct {
	TotalCustomers        int        `json:"total_customers"`
	TotalCredit           float64    `json:"total_credit"`
	TotalPayment          float64    `json:"total_payment"`
	OutstandingBalance    float64    `json:"outstanding_balance"`
	PendingCustomersCount int        `json:"pending_customers_count"`
	RecentCustomers       []Customer `json:"recent_customers"`
}

// Dashboard is the landing view payload.
type Dashboard struct {
	Business           Business         `json:"business"`
	Summary            DashboardSummary `json:"summary"`
	RecentTransactions []Transaction    `json:"recent_transactions"`
	PendingCustomers   []Customer       `json:"pending_customers"`
}

// Location is the business's geographic position.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Pincode   string  `json:"pincode,omitempty"`
}

// FilePart is an in-memory file attached to a multipart request.
type FilePart struct {
	FieldName   string
	FileName    string
	ContentType string
	Data        []byte
}

// CustomerSummary aggregates one customer's ledger.
type CustomerSummary struct {
	TotalCredit      float64 `json:"total_credit"`
	TotalPayment     float64 `json:"total_payment"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transaction_count"`
}

// CustomerDetail is a customer with their full ledger.
type CustomerDetail struct {
	Customer     Customer        `json:"customer"`
	Transactions []Transaction   `json:"transactions"`
	Summary      CustomerSummary `json:"summary"`
}

// Voucher is a discount code a business hands out to its customers.
type Voucher struct {
	ID          string  `json:"$id"`
	Code        string  `json:"code"`
	Discount    float64 `json:"discount"`
	MinAmount   float64 `json:"min_amount,omitempty"`
	MaxDiscount float64 `json:"max_discount,omitempty"`
	ValidUntil  string  `json:"valid_until"`
	Description string  `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// VoucherInput is the body for creating a voucher. Discount is a percentage.
type VoucherInput struct {
	Code        string  `json:"code"`
	Discount    float64 `json:"discount"`
	MinAmount   float64 `json:"min_amount,omitempty"`
	MaxDiscount float64 `json:"max_discount,omitempty"`
	ValidUntil  string  `json:"valid_until"`
	Description string  `json:"description,omitempty"`
}

// Offer is a promotion shown on the business's public page.
type Offer struct {
	ID          string  `json:"$id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Discount    float64 `json:"discount"`
	ValidFrom   string  `json:"valid_from,omitempty"`
	ValidUntil  string  `json:"valid_until"`
	ImageURL    string  `json:"image_url,omitempty"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

type OfferInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Discount    float64 `json:"discount"`
	ValidFrom   string  `json:"valid_from,omitempty"`
	ValidUntil  string  `json:"valid_until"`
	ImageURL    string  `json:"image_url,omitempty"`
}
