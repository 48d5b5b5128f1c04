package domain

// Role grants capabilities to an account.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid checks if the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Account is one member of a household. Two accounts form a household once paired.
type Account struct {
	AccountID         int64   `json:"id"`
	Email             string  `json:"email"` // Unique, compared case-sensitively
	Name              string  `json:"name"`
	PasswordHash      string  `json:"-"`
	AvatarURL         *string `json:"avatarUrl,omitempty"`
	MonthlyBudget     int64   `json:"monthlyBudget"`
	CurrentSpending   int64   `json:"currentSpending"` // Sum of owned expenses added since the last month close
	PairedAccountID   *int64  `json:"pairedAccountId"` // Symmetric; never changes once set
	BudgetPeriodStart string  `json:"budgetPeriodStart"`
	Role              Role    `json:"role"`
	AuditFields
}

// IsPaired reports whether the account belongs to a two-member household.
func (a *Account) IsPaired() bool {
	return a.PairedAccountID != nil
}

// CanAdminister reports whether the account may use administrative operations.
func (a *Account) CanAdminister() bool {
	return a.Role == RoleAdmin
}

// Identity is the verified caller resolved from an access token.
// PairedAccountID reflects the pairing at token issuance.
type Identity struct {
	AccountID       int64
	PairedAccountID *int64
	Email           string
	Role            Role
}

// HouseholdIDs returns the ids whose ledger entries the caller may see and mutate.
func (i Identity) HouseholdIDs() []int64 {
	if i.PairedAccountID == nil {
		return []int64{i.AccountID}
	}
	return []int64{i.AccountID, *i.PairedAccountID}
}

// Owns reports whether an entry owned by ownerID belongs to the caller's household.
func (i Identity) Owns(ownerID int64) bool {
	if ownerID == i.AccountID {
		return true
	}
	return i.PairedAccountID != nil && *i.PairedAccountID == ownerID
}

// Household is an account viewed together with its partner.
type Household struct {
	Account *Account
	Spouse  *Account
	Budget  BudgetOverview
}
