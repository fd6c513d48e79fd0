package session

import "encoding/json"

const (
	// KeyAccessToken is an exported constant or variable used by the auth client.
	KeyAccessToken = "fixit_access_token"
	// KeyRefreshToken is an exported constant or variable used by the auth client.
	KeyRefreshToken = "fixit_refresh_token"
	// KeyUser is an exported constant or variable used by the auth client.
	KeyUser = "fixit_user"
)

// Keys returns the fixed store keys in deterministic order.
func Keys() [3]string {
	return [3]string{KeyAccessToken, KeyRefreshToken, KeyUser}
}

// User is the persisted user record attached to a session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session defines a public type used by fixit-go APIs.
//
// Session instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
// Tokens are replaced wholesale on renewal; individual fields are never
// mutated in place.
type Session struct {
	User         User
	AccessToken  string
	RefreshToken string
}

// Complete reports whether the session carries both tokens and a user record.
// Access and refresh tokens are both present or both absent; anything else is
// treated as corruption.
func (s Session) Complete() bool {
	return s.AccessToken != "" && s.RefreshToken != "" && s.User.ID != ""
}

// EncodeUser serializes the user record for storage under [KeyUser].
func EncodeUser(u User) (string, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeUser parses a stored user record. A decode failure means the stored
// session is corrupt and must be treated as absent.
func DecodeUser(raw string) (User, error) {
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return User{}, err
	}
	return u, nil
}
