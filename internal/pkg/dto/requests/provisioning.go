package requests

type ProvisionAdminData struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=32"`
	CRM       string `json:"crm,omitempty" validate:"omitempty,max=32"`
}

type ProvisionClinicData struct {
	Name        string `json:"name" validate:"required,max=200"`
	City        string `json:"city" validate:"required,max=100"`
	Address     string `json:"address" validate:"required,max=300"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	TradingName string `json:"tradingName,omitempty" validate:"omitempty,max=200"`
	CNPJ        string `json:"cnpj,omitempty" validate:"omitempty,max=18"`
}

type ProvisionClinicWithAdmin struct {
	AdminData  ProvisionAdminData  `json:"adminData" validate:"required"`
	ClinicData ProvisionClinicData `json:"clinicData" validate:"required"`
}

type AssociateStaff struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=32"`
	CRM       string `json:"crm" validate:"required,max=32"`
	Role      string `json:"role" validate:"required,role"`
	Title     string `json:"title,omitempty" validate:"omitempty,max=100"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=2000"`
	ClinicID  string `json:"clinic_id" validate:"required,uuid"`
	IsAdmin   bool   `json:"is_admin,omitempty"`
}
