package domain

import "strings"

// Placeholders used when an identity field is left blank.
const (
	DefaultLoginEmail    = "demo@sentinel.com"
	DefaultRegisterEmail = "user@sentinel.com"
	DefaultDisplayName   = "用户"
	DefaultRegisterName  = "新用户"

	// WeChatLoginEmail is the identity used by third-party sign-in.
	WeChatLoginEmail = "wechat_user@sentinel.com"
)

// Session is the signed-in demo identity.
// The JSON layout is the persisted record.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewLoginSession builds a session from an email-like identity.
// The display name is the local part before "@".
func NewLoginSession(identity string) Session {
	email := strings.TrimSpace(identity)
	if email == "" {
		email = DefaultLoginEmail
	}

	name, _, _ := strings.Cut(email, "@")
	if name == "" {
		name = DefaultDisplayName
	}

	return Session{Email: email, Name: name}
}

// NewRegisteredSession builds a session from an explicit name and identity.
func NewRegisteredSession(name, identity string) Session {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultRegisterName
	}

	email := strings.TrimSpace(identity)
	if email == "" {
		email = DefaultRegisterEmail
	}

	return Session{Email: email, Name: name}
}

// Valid reports whether a restored record carries a usable identity.
func (s Session) Valid() bool {
	return s.Email != "" && s.Name != ""
}
