package domain

// Contact is a payee or payer attached to ledger entries.
type Contact struct {
	ID            uint   `json:"id"`
	AccountID     uint   `json:"accountID"`
	Name          string `json:"name"` // company name; person names below
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	Fax           string `json:"fax"`
	Website       string `json:"website"`
	AccountNumber string `json:"accountNumber"`
	Email         string `json:"email"`
	Twitter       string `json:"twitter"`
	Facebook      string `json:"facebook"`
	Linkedin      string `json:"linkedin"`
}

// DisplayName prefers the company name, falling back to first/last.
func (c Contact) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.FirstName == "" && c.LastName == "" {
		return ""
	}
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
