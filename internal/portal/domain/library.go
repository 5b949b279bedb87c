package domain

import "time"

// LibraryProduct is one row of the admin-curated pricing catalog. Tiered
// products carry up to five option/price slots (e.g. 5GB/10GB/25GB);
// flat-priced add-ons use MonthOnMonth/OnceOff directly.
type LibraryProduct struct {
	ID       string
	Solution string // solution type the product belongs to
	Product  string // product name, e.g. "Prepaid Bundle"

	Options [5]string
	Prices  [5]float64

	OnceOff      float64
	MonthOnMonth float64

	Discount6Mth  float64
	Discount12Mth float64
	Discount24Mth float64

	DiscountCode    string
	DiscountPercent float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OptionPrice returns the price slot matching the given option label, falling
// back to the flat month-on-month price when the product has no option tiers.
func (p LibraryProduct) OptionPrice(option string) (float64, bool) {
	for i, opt := range p.Options {
		if opt != "" && opt == option {
			return p.Prices[i], true
		}
	}
	return 0, false
}
