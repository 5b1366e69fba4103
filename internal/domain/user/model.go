package user

// Principal identifies an authenticated admin for the duration of a request.
type Principal struct {
	UserID   string
	Username string
}
