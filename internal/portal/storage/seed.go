package storage

// SeedEmployee is one entry of the fixed bootstrap data set.
type SeedEmployee struct {
	Username   string
	Password   string
	FullName   string
	Department string
	Email      string
}

// SeedEmployees returns the fixed employee set inserted at bootstrap, in
// seed order. Bootstrap assigns creation timestamps that increase in this
// order, so recency-ordered listings show the set reversed.
func SeedEmployees() []SeedEmployee {
	return []SeedEmployee{
		{"administrator", "password1", "System Administrator", "IT", "administrator@company.com"},
		{"johndoe1", "password123", "John Doe", "Engineering", "john.doe@company.com"},
		{"janesmith", "welcome2024", "Jane Smith", "Marketing", "jane.smith@company.com"},
		{"mikewils", "securepass", "Mike Wilson", "Sales", "mike.wilson@company.com"},
		{"sarahjns", "user123", "Sarah Jones", "HR", "sarah.jones@company.com"},
		{"davidbrn", "david2024", "David Brown", "Finance", "david.brown@company.com"},
		{"lisagrc1", "lisa123", "Lisa Garcia", "Operations", "lisa.garcia@company.com"},
		{"robertle", "robertlee", "Robert Lee", "Legal", "robert.lee@company.com"},
		{"emmadv1s", "emma2024", "Emma Davis", "Customer Support", "emma.davis@company.com"},
		{"thomasan", "thomas123", "Thomas Anderson", "Product", "thomas.anderson@company.com"},
	}
}
