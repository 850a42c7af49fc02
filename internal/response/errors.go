package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrAdminAccessOnly ErrCode = "ADMIN_ACCESS_ONLY"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Grading ───────────────────────────────────────────────────────
	ErrInvalidBatchFormat ErrCode = "INVALID_BATCH_FORMAT"
	ErrZeroDenominator    ErrCode = "ZERO_DENOMINATOR"
	ErrIncompleteGrades   ErrCode = "INCOMPLETE_GRADES"
	ErrInvalidCGPAInput   ErrCode = "INVALID_CGPA_INPUT"
	ErrInvalidGradePoint  ErrCode = "INVALID_GRADE_POINT"
	ErrUnknownSubject     ErrCode = "UNKNOWN_SUBJECT"
	ErrRegulationNotFound ErrCode = "REGULATION_NOT_FOUND"
	ErrOverlappingRange   ErrCode = "OVERLAPPING_RANGE"

	// ─── Wizard ────────────────────────────────────────────────────────
	ErrInvalidWizardStep ErrCode = "INVALID_WIZARD_STEP"
	ErrWizardNotFound    ErrCode = "WIZARD_NOT_FOUND"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Invalid username or password."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."
	case ErrTokenExpired:
		return "The authentication token has expired."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrAdminAccessOnly:
		return "This resource is restricted to administrators."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Resource already exists."

	// ─── Grading ───────────────────────────────────────────────────────
	case ErrInvalidBatchFormat:
		return "Batch must look like 2025-2029."
	case ErrZeroDenominator:
		return "All subjects failed. SGPA cannot be calculated."
	case ErrIncompleteGrades:
		return "Please select grades for all subjects."
	case ErrInvalidCGPAInput:
		return "Each semester needs an SGPA between 0 and 10 and positive credits."
	case ErrInvalidGradePoint:
		return "Grade point is not on the grading scale."
	case ErrUnknownSubject:
		return "A graded subject does not belong to the selected semester."
	case ErrRegulationNotFound:
		return "No regulation found for this batch."
	case ErrOverlappingRange:
		return "Batch range overlaps another active regulation."

	// ─── Wizard ────────────────────────────────────────────────────────
	case ErrInvalidWizardStep:
		return "That selection is not valid for the current step."
	case ErrWizardNotFound:
		return "Selection session not found or expired."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Internal server error."
	default:
		return "An unexpected error occurred."
	}
}
