package exceptions

import (
	"cardioflow-service/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Authentication and authorization
	ErrTokenMissing = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrInvalidSession = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}
	ErrCallerProfileMissing = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthCallerProfileMissing)
	}
	ErrNotAuthorized = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthInsufficientRole)
	}
	ErrNotClinicAdmin = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthNotClinicAdmin)
	}
	ErrInvalidCredential = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidCredential, constvars.ErrDevIdentityVerifyFailed)
	}

	// Provisioning
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevEmailAlreadyExists)
	}
	ErrAlreadyStaffMember = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientAlreadyStaffMember, constvars.ErrDevMembershipAlreadyActive)
	}
	ErrIdentityCreate = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientProvisioningFailed, constvars.ErrDevIdentityCreateFailed)
	}
	ErrIdentityDelete = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientProvisioningFailed, constvars.ErrDevIdentityDeleteFailed)
	}
	ErrIdentityList = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientProvisioningFailed, constvars.ErrDevIdentityListFailed)
	}
	ErrProfileWaitExhausted = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientProfileNotCreated, constvars.ErrDevProfileWaitExhausted)
	}
	ErrProvisioning = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientProvisioningFailed, constvars.ErrDevUnexpectedProvisioningErr)
	}
	ErrGenerateDefaultPassword = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientProvisioningFailed, constvars.ErrDevGenerateDefaultPassword)
	}
	// Not-found lookups
	ErrClinicNotFound = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientClinicNotFound, constvars.ErrDevPostgresFindData)
	}
	ErrPatientNotFound = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientPatientNotFound, constvars.ErrDevPostgresFindData)
	}
	ErrReportNotFound = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientReportNotFound, constvars.ErrDevMongoFindData)
	}
	ErrStaffMemberNotFound = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientStaffMemberNotFound, constvars.ErrDevPostgresFindData)
	}
	ErrTussCodeNotFound = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusNotFound, constvars.ErrClientTussCodeNotFound, constvars.ErrDevPostgresFindData)
	}

	// Stores
	ErrPostgresDBFindData = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPostgresFindData)
	}
	ErrPostgresDBInsertData = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPostgresInsertData)
	}
	ErrPostgresDBUpdateData = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPostgresUpdateData)
	}
	ErrPostgresDBDeleteData = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPostgresDeleteData)
	}
	ErrMongoDBFindData = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoFindData)
	}
	ErrMongoDBInsertData = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoInsertData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGet)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}

	// Outbound HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error) *CustomError {
		return WrapWithError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDecodeResponse)
	}
)
