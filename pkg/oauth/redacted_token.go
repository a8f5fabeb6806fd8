package oauth

// RedactedToken wraps a secret string (client secret, access token) to
// prevent accidental logging.
//
// String, GoString and the marshalers all return "[REDACTED]". Only Value
// exposes the secret, for the one place it is written into a request.
//
//	secret := oauth.NewRedactedToken(os.Getenv("FATSECRET_CLIENT_SECRET"))
//	fmt.Println(secret)   // [REDACTED]
//	secret.Value()        // actual value
type RedactedToken struct {
	value string
}

// NewRedactedToken creates a new RedactedToken wrapping the given value.
func NewRedactedToken(value string) RedactedToken {
	return RedactedToken{value: value}
}

// Value returns the actual secret. Never log the result of this method.
func (t RedactedToken) Value() string {
	return t.value
}

// String implements fmt.Stringer.
func (t RedactedToken) String() string {
	return "[REDACTED]"
}

// GoString implements fmt.GoStringer for %#v formatting.
func (t RedactedToken) GoString() string {
	return "oauth.RedactedToken{[REDACTED]}"
}

// IsEmpty returns true if the wrapped value is empty.
func (t RedactedToken) IsEmpty() bool {
	return t.value == ""
}

// MarshalText implements encoding.TextMarshaler.
func (t RedactedToken) MarshalText() ([]byte, error) {
	return []byte("[REDACTED]"), nil
}

// MarshalJSON implements json.Marshaler.
func (t RedactedToken) MarshalJSON() ([]byte, error) {
	return []byte(`"[REDACTED]"`), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so secrets can be read
// from configuration files.
func (t *RedactedToken) UnmarshalText(text []byte) error {
	t.value = string(text)
	return nil
}
