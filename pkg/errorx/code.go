package errorx

type Code int

var Unknown = Error{Code: Internal, Message: "Request failed"}

const (
	// Common codes
	BadRequest Code = 100001 + iota
	Unauthenticated
	NotFound
	Internal
)
