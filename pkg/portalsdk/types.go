package portalsdk

import "time"

// SolutionConfig mirrors the typed product selection stored on a solution.
type SolutionConfig struct {
	Prepaid  string   `json:"prepaid,omitempty"`
	Wireless string   `json:"wireless,omitempty"`
	Fibre    string   `json:"fibre,omitempty"`
	Services []string `json:"services,omitempty"`
	Security []string `json:"security,omitempty"`
}

// User is the public view of a portal user.
type User struct {
	ID          string     `json:"id"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	Name        string     `json:"name,omitempty"`
	Surname     string     `json:"surname,omitempty"`
	Role        string     `json:"role"`
	KycStatus   string     `json:"kyc_status"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Solution is the public view of a configured solution.
type Solution struct {
	ID            string         `json:"id"`
	SolutionType  string         `json:"solution_type"`
	Name          string         `json:"name"`
	Address       string         `json:"address,omitempty"`
	CustomerName  string         `json:"customer_name,omitempty"`
	Configuration SolutionConfig `json:"configuration"`
	PriceOnceOff  float64        `json:"price_once_off"`
	PriceMonthly  float64        `json:"price_monthly"`
	TermMonths    int            `json:"term_months"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Order is the public view of an order, joined with a summary of its parent
// solution. Configuration is populated on detail reads only.
type Order struct {
	ID            string          `json:"id"`
	SolutionID    string          `json:"solution_id"`
	OrderNumber   string          `json:"order_number"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	PaymentStatus string          `json:"payment_status"`
	AmountOnceOff float64         `json:"amount_once_off"`
	AmountMonthly float64         `json:"amount_monthly"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	SolutionType  string          `json:"solution_type,omitempty"`
	SolutionName  string          `json:"solution_name,omitempty"`
	Address       string          `json:"address,omitempty"`
	CustomerName  string          `json:"customer_name,omitempty"`
	Configuration *SolutionConfig `json:"configuration,omitempty"`
}

// WhitelistEntry is the public view of a pre-approval entry.
type WhitelistEntry struct {
	ID      string    `json:"id"`
	Phone   string    `json:"phone,omitempty"`
	Email   string    `json:"email,omitempty"`
	Role    string    `json:"role"`
	AddedBy string    `json:"added_by,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

// LibraryProduct is the public view of a pricing catalog row.
type LibraryProduct struct {
	ID              string     `json:"id"`
	Solution        string     `json:"solution"`
	Product         string     `json:"product"`
	Options         [5]string  `json:"options"`
	Prices          [5]float64 `json:"prices"`
	OnceOff         float64    `json:"once_off"`
	MonthOnMonth    float64    `json:"month_on_month"`
	Discount6Mth    float64    `json:"discount_6mth"`
	Discount12Mth   float64    `json:"discount_12mth"`
	Discount24Mth   float64    `json:"discount_24mth"`
	DiscountCode    string     `json:"discount_code,omitempty"`
	DiscountPercent float64    `json:"discount_percent,omitempty"`
}

// --- Requests ---

// RequestOtpRequest asks for a one-time passcode. Method selects the delivery
// channel hint ("sms" or "email"); the server routes by identifier shape.
type RequestOtpRequest struct {
	PhoneOrEmail string `json:"phoneOrEmail"`
	Method       string `json:"method,omitempty"`
}

// VerifyOtpRequest exchanges a passcode for a session token.
type VerifyOtpRequest struct {
	PhoneOrEmail string `json:"phoneOrEmail"`
	OtpCode      string `json:"otpCode"`
}

// KycSubmitRequest carries identity details and uploaded document references.
type KycSubmitRequest struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	IDNumber    string `json:"id_number"`
	DateOfBirth string `json:"date_of_birth"`

	InstitutionName string `json:"institution_name,omitempty"`
	InstitutionRole string `json:"institution_role,omitempty"`
	StudentStaffID  string `json:"student_staff_id,omitempty"`

	SelfieURL           string `json:"selfie_url,omitempty"`
	IDDocumentURL       string `json:"id_document_url,omitempty"`
	ProofOfResidenceURL string `json:"proof_of_residence_url,omitempty"`
}

// SolutionRequest creates or overwrites a solution. Prices are computed
// server-side; any client-supplied prices are ignored.
type SolutionRequest struct {
	SolutionType  string         `json:"solution_type"`
	Name          string         `json:"name"`
	Address       string         `json:"address,omitempty"`
	CustomerName  string         `json:"customer_name,omitempty"`
	Configuration SolutionConfig `json:"configuration"`
	TermMonths    int            `json:"term_months"`
}

// CreateOrderRequest places an order for a saved solution.
type CreateOrderRequest struct {
	SolutionID    string `json:"solution_id"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

// PaymentRequest settles an order.
type PaymentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// WhitelistAddRequest pre-approves a phone or email with a role.
type WhitelistAddRequest struct {
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// LibraryProductRequest creates or overwrites a catalog row.
type LibraryProductRequest struct {
	Solution        string     `json:"solution"`
	Product         string     `json:"product"`
	Options         [5]string  `json:"options"`
	Prices          [5]float64 `json:"prices"`
	OnceOff         float64    `json:"once_off"`
	MonthOnMonth    float64    `json:"month_on_month"`
	Discount6Mth    float64    `json:"discount_6mth"`
	Discount12Mth   float64    `json:"discount_12mth"`
	Discount24Mth   float64    `json:"discount_24mth"`
	DiscountCode    string     `json:"discount_code,omitempty"`
	DiscountPercent float64    `json:"discount_percent,omitempty"`
}

// --- Responses ---

// MessageResponse is the generic success envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// RequestOtpResponse confirms a passcode was issued. DemoOtp is present only
// when the server runs in demo mode.
type RequestOtpResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	DemoOtp   string `json:"demo_otp,omitempty"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// VerifyOtpResponse returns the logged-in user and their session token.
type VerifyOtpResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}

// SessionResponse returns the current session's user.
type SessionResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// SolutionsResponse lists the caller's solutions.
type SolutionsResponse struct {
	Success   bool       `json:"success"`
	Solutions []Solution `json:"solutions"`
}

// SolutionResponse returns one solution.
type SolutionResponse struct {
	Success  bool     `json:"success"`
	Solution Solution `json:"solution"`
}

// CreateSolutionResponse returns the id of a newly saved solution.
type CreateSolutionResponse struct {
	Success    bool   `json:"success"`
	SolutionID string `json:"solution_id"`
}

// OrdersResponse lists the caller's orders.
type OrdersResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}

// OrderResponse returns one order with its solution summary.
type OrderResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"order"`
}

// CreateOrderResponse returns the identifiers of a newly placed order.
type CreateOrderResponse struct {
	Success     bool   `json:"success"`
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

// WhitelistResponse lists all whitelist entries.
type WhitelistResponse struct {
	Success   bool             `json:"success"`
	Whitelist []WhitelistEntry `json:"whitelist"`
}

// WhitelistEntryResponse returns one whitelist entry.
type WhitelistEntryResponse struct {
	Success bool           `json:"success"`
	Entry   WhitelistEntry `json:"entry"`
}

// LibraryResponse lists the pricing catalog.
type LibraryResponse struct {
	Success bool             `json:"success"`
	Library []LibraryProduct `json:"library"`
}

// LibraryProductResponse returns one catalog row.
type LibraryProductResponse struct {
	Success bool           `json:"success"`
	Product LibraryProduct `json:"product"`
}

// ImportResponse reports how many CSV rows were imported.
type ImportResponse struct {
	Success  bool `json:"success"`
	Imported int  `json:"imported"`
}

// DashboardResponse aggregates everything the portal dashboard needs in one
// round trip. SolutionLibrary and Whitelist are admin-only.
type DashboardResponse struct {
	Success         bool             `json:"success"`
	User            User             `json:"user"`
	Solutions       []Solution       `json:"solutions"`
	SolutionLibrary []LibraryProduct `json:"solutionLibrary,omitempty"`
	Whitelist       []WhitelistEntry `json:"whitelist,omitempty"`
}

// HealthChecks reports per-dependency health.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
