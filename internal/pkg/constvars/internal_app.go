package constvars

type contextKey string

const (
	ContextSessionDataKey contextKey = "sessionData"
	ContextSessionIDKey   contextKey = "sessionID"
)

const (
	// Roles carried on profiles and clinic_staff rows.
	RoleSuperAdmin   = "super_admin"
	RoleClinicAdmin  = "clinic_admin"
	RoleDoctor       = "doctor"
	RoleReceptionist = "receptionist"
)

const (
	URLParamClinicID  = "clinic_id"
	URLParamPatientID = "patient_id"
	URLParamReportID  = "report_id"
	URLParamUserID    = "user_id"
	URLParamTussID    = "tuss_id"

	URLQueryParamPage     = "page"
	URLQueryParamPageSize = "page_size"
	URLQueryParamSearch   = "search"
)

const (
	MongoCollectionReports = "reports"

	RedisSessionPrefix = "session:"
)

const (
	ResourceClinics  = "clinics"
	ResourcePatients = "patients"
	ResourceReports  = "reports"
)

const AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
