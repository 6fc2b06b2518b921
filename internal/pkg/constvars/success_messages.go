package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	LoginSuccess  = "successfully login"
	LogoutSuccess = "successfully logout"

	// Provisioning messages
	ClinicProvisionedSuccess = "clinic and administrator provisioned successfully"
	StaffAssociatedSuccess   = "staff member associated successfully"
	StaffReactivatedSuccess  = "staff membership reactivated successfully"
	StaffDeactivatedSuccess  = "staff member deactivated successfully"

	// Clinic messages
	GetClinicSuccess  = "get clinic successfully"
	GetClinicsSuccess = "get clinics successfully"
	GetStaffSuccess   = "get clinic staff successfully"

	// Patient messages
	PatientCreatedSuccess = "patient created successfully"
	PatientUpdatedSuccess = "patient updated successfully"
	PatientDeletedSuccess = "patient deleted successfully"
	GetPatientSuccess     = "get patient successfully"
	GetPatientsSuccess    = "get patients successfully"

	// Report messages
	ReportCreatedSuccess = "report created successfully"
	GetReportSuccess     = "get report successfully"
	GetReportsSuccess    = "get reports successfully"

	// Billing messages
	TussCodeCreatedSuccess = "TUSS code created successfully"
	TussCodeDeletedSuccess = "TUSS code removed successfully"
	GetTussCodesSuccess    = "get TUSS codes successfully"
)
