package common

// UserContextKey is the echo context key holding the authenticated user set
// by the session middleware.
const UserContextKey = "user"
