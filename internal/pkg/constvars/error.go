package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientEmailAlreadyExists            = "email already registered"
	ErrClientAlreadyStaffMember            = "this user is already an active member of the clinic"
	ErrClientProvisioningFailed            = "failed to provision the new account"
	ErrClientProfileNotCreated             = "the new account profile was not created in time"
	ErrClientClinicNotFound                = "clinic not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientReportNotFound                = "report not found"
	ErrClientStaffMemberNotFound           = "staff member not found"
	ErrClientTussCodeNotFound              = "TUSS code not found"
	ErrClientInvalidCredential             = "invalid credential"
)

// Error messages for developers
const (
	ErrDevInvalidInput          = "invalid input"
	ErrDevCannotParseJSON       = "cannot parse JSON"
	ErrDevCannotMarshalJSON     = "cannot marshal JSON"
	ErrDevValidationFailed      = "validation failed"
	ErrDevInvalidRequestPayload = "invalid request payload"
	ErrDevMissingRequiredFields = "missing required fields"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthCallerProfileMissing  = "caller has no profile"
	ErrDevAuthInsufficientRole      = "caller role is not allowed for this operation"
	ErrDevAuthNotClinicAdmin        = "caller is not an admin of the target clinic"

	// Provisioning messages
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevIdentityCreateFailed      = "identity provider rejected user creation"
	ErrDevIdentityDeleteFailed      = "identity provider rejected user deletion"
	ErrDevIdentityListFailed        = "identity provider rejected user listing"
	ErrDevIdentityVerifyFailed      = "identity provider rejected token verification"
	ErrDevProfileWaitExhausted      = "profile row did not materialize within the attempt budget"
	ErrDevMembershipAlreadyActive   = "membership already active"
	ErrDevGenerateDefaultPassword   = "failed to generate default password"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevPanicRecovered            = "panic recovered in handler"
	ErrDevUnexpectedProvisioningErr = "unexpected failure during provisioning"

	// Store messages
	ErrDevPostgresFindData   = "failed to find data in postgres"
	ErrDevPostgresInsertData = "failed to insert data into postgres"
	ErrDevPostgresUpdateData = "failed to update data in postgres"
	ErrDevPostgresDeleteData = "failed to delete data from postgres"
	ErrDevMongoFindData      = "failed to find document in mongo"
	ErrDevMongoInsertData    = "failed to insert document into mongo"
	ErrDevRedisSet           = "failed to set data to redis"
	ErrDevRedisGet           = "failed to get data from redis"
	ErrDevRedisDelete        = "failed to delete data from redis"
	ErrDevRedisStoreSession  = "failed to store session data"

	// Outbound HTTP messages
	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"
	ErrDevDecodeResponse    = "failed to decode response body"

	// Messaging messages
	ErrDevPublishAuditEvent = "failed to publish audit event"
)
