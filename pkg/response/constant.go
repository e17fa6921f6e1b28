package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ErrorCodeBadRequest      = 400
	ErrorCodeUnauthorized    = 401
	ErrorCodeNotFound        = 404
	ErrorCodeTooManyRequests = 429
	InternalServerErrorCode  = 500
	ErrorCodeUpstream        = 502

	DateTimeFormat = "2006-01-02 15:04:05"
)
