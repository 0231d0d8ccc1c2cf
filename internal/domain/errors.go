package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidProjectID      = errors.New("invalid project id")
	ErrInvalidProjectTitle   = errors.New("invalid project title")
	ErrInvalidStatus         = errors.New("invalid project status")
	ErrEmptyDescription      = errors.New("contribution description is empty")
	ErrInvalidEventDate      = errors.New("contribution date is in the future")
	ErrInvalidStreakValues   = errors.New("invalid streak values")
	ErrInvalidLeaderboardLen = errors.New("invalid leaderboard limit")

	// Identity errors
	ErrUnauthenticated = errors.New("user identity is missing")
	ErrForbidden       = errors.New("operation requires admin role")

	// Project errors
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectAlreadyExists = errors.New("project already exists")
	ErrProjectStatusChanged = errors.New("project status changed concurrently")

	// Contribution errors
	ErrContributionAlreadyExists = errors.New("contribution id already used by another user")

	// Stats consistency errors
	ErrInvalidTransition = errors.New("stats transition would break counter invariants")
	ErrConflict          = errors.New("stats update lost the race after all attempts")
	ErrTimeout           = errors.New("stats update deadline exceeded")
	ErrOutOfOrderEvent   = errors.New("contribution is older than the last recorded contribution")
)

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidUserID:             {Code: "INVALID_REQUEST", Message: "user id is required"},
	ErrInvalidProjectID:          {Code: "INVALID_REQUEST", Message: "project id is required"},
	ErrInvalidProjectTitle:       {Code: "INVALID_REQUEST", Message: "project title is required"},
	ErrInvalidStatus:             {Code: "INVALID_REQUEST", Message: "status must be pending, approved or rejected"},
	ErrEmptyDescription:          {Code: "INVALID_REQUEST", Message: "description is required"},
	ErrInvalidEventDate:          {Code: "INVALID_REQUEST", Message: "contribution date is in the future"},
	ErrInvalidStreakValues:       {Code: "INVALID_REQUEST", Message: "streaks must be non-negative and current must not exceed longest"},
	ErrInvalidLeaderboardLen:     {Code: "INVALID_REQUEST", Message: "limit must be positive"},
	ErrUnauthenticated:           {Code: "UNAUTHENTICATED", Message: "user identity is missing"},
	ErrForbidden:                 {Code: "FORBIDDEN", Message: "not authorized as admin"},
	ErrProjectNotFound:           {Code: "NOT_FOUND", Message: "project not found"},
	ErrProjectAlreadyExists:      {Code: "PROJECT_EXISTS", Message: "project id already exists"},
	ErrProjectStatusChanged:      {Code: "STATUS_CHANGED", Message: "project status was changed by another request"},
	ErrContributionAlreadyExists: {Code: "CONTRIBUTION_EXISTS", Message: "contribution id already exists"},
	ErrInvalidTransition:         {Code: "INVALID_TRANSITION", Message: "status transition does not match current counters"},
	ErrConflict:                  {Code: "CONFLICT", Message: "concurrent update, retry the request"},
	ErrTimeout:                   {Code: "TIMEOUT", Message: "update timed out, retry the request"},
	ErrOutOfOrderEvent:           {Code: "OUT_OF_ORDER", Message: "contribution is older than the last recorded one"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	for domainErr, httpErr := range ErrorMapping {
		if errors.Is(err, domainErr) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
