package responses

type Clinic struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TradingName string `json:"trading_name,omitempty"`
	CNPJ        string `json:"cnpj,omitempty"`
	City        string `json:"city"`
	Address     string `json:"address"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}

type StaffMember struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Title     string `json:"title,omitempty"`
	IsAdmin   bool   `json:"is_admin"`
	Active    bool   `json:"active"`
}
