package models

// AnonymousUserID namespaces progress for callers without a session.
const AnonymousUserID = "anonymous"

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}
