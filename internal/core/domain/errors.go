package domain

import "errors"

// Authentication failures. All map to 401.
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrTokenMalformed  = errors.New("malformed token")
	ErrTokenSignature  = errors.New("invalid token signature")
	ErrTokenExpired    = errors.New("token expired")
	ErrBadCredentials  = errors.New("wrong password")
)

// Request failures. Not-found errors are deliberately treated as client
// errors (400), not 404: the ids arrive in the request body or path and a
// missing referent means the request precondition was never satisfiable.
var (
	ErrEmailExists     = errors.New("email already registered")
	ErrInvalidRole     = errors.New("invalid user role")
	ErrUserNotFound    = errors.New("user not found")
	ErrTodoNotFound    = errors.New("todo not found")
	ErrManagerNotFound = errors.New("manager not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// Authorization denial reasons.
var (
	ErrOwnerMissing     = errors.New("todo owner is not valid")
	ErrNotOwner         = errors.New("only the todo owner may do this")
	ErrSelfAssignment   = errors.New("todo owner cannot be assigned as their own manager")
	ErrManagerNotOnTodo = errors.New("manager is not registered on this todo")
	ErrNotManager       = errors.New("not a manager of this todo")
	ErrInsufficientRole = errors.New("admin role required")
)
