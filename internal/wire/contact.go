package wire

// Contact is a contact as the API sends and receives it.
type Contact struct {
	ID            uint   `json:"id"`
	AccountID     uint   `json:"account_id"`
	Name          string `json:"name"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	Fax           string `json:"fax"`
	Website       string `json:"website"`
	AccountNumber string `json:"account_number"`
	Email         string `json:"email"`
	Twitter       string `json:"twitter"`
	Facebook      string `json:"facebook"`
	Linkedin      string `json:"linkedin"`
}
