package contextkeys

// Custom key type to avoid collisions with other packages.
type contextKey string

// UserIDContextKey is the key under which middleware stores the
// authenticated recruiter's ID in gin.Context.
const UserIDContextKey = contextKey("userID")

// RoleContextKey is the key for the authenticated user's role.
const RoleContextKey = contextKey("role")
