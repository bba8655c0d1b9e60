package domain

type Customer struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
}

// Address is a customer address book entry. Country carries the country
// name already localized for the language the address listing was
// requested with.
type Address struct {
	ID        int
	Alias     string
	FirstName string
	LastName  string
	Company   string
	Address1  string
	Address2  string
	Postcode  string
	City      string
	CountryID int
	Country   string
	Phone     string
}
