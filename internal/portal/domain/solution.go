package domain

import "time"

// Solution types. Each exposes a distinct subset of purchasable products.
const (
	SolutionEduStudent = "EduStudent"
	SolutionEduFlex    = "EduFlex"
	SolutionEduSchool  = "EduSchool"
	SolutionEduSafe    = "EduSafe"
)

// Solution lifecycle states. Draft solutions are editable and deletable;
// active and offer solutions are immutable.
const (
	SolutionDraft     = "draft"
	SolutionActive    = "active"
	SolutionCancelled = "cancelled"
	SolutionOffer     = "offer"
)

// ValidSolutionType reports whether t is one of the four solution types.
func ValidSolutionType(t string) bool {
	switch t {
	case SolutionEduStudent, SolutionEduFlex, SolutionEduSchool, SolutionEduSafe:
		return true
	}
	return false
}

// SolutionConfig is the typed product selection for a solution. Which fields
// may be populated depends on the solution type; the configurator rejects
// selections outside the type's eligible set.
type SolutionConfig struct {
	Prepaid  string   `json:"prepaid,omitempty"`  // EduStudent: 5GB | 10GB | 25GB
	Wireless string   `json:"wireless,omitempty"` // EduFlex: 10Mbps | 20Mbps | 100Mbps
	Fibre    string   `json:"fibre,omitempty"`    // EduSchool: 50Mbps | 200Mbps | 500Mbps
	Services []string `json:"services,omitempty"` // ai-tutor | apn | firewall
	Security []string `json:"security,omitempty"` // powerfleet-video | powerfleet-dash | mix-telematics | mypanic
}

type Solution struct {
	ID           string
	UserID       string
	SolutionType string
	Name         string
	Address      string
	CustomerName string
	Config       SolutionConfig
	PriceOnceOff float64
	PriceMonthly float64
	TermMonths   int
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
