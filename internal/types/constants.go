package types

// Key under which the auth middleware stores the current user in the gin
// context.
const ContextUserKey = "user"

// Name of the cookie carrying the session token.
const SessionCookieName = "agenda_session"

type UserResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileImageURL string `json:"profile_image_url"`
	CreatedAt       string `json:"created_at"`
}
