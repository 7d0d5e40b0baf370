package integrity

// Option applies a configuration option to the SHA256Validator.
type Option func(*SHA256Validator)

// WithToken overrides the shared secret token. Empty values are ignored so a
// missing config entry cannot silently disable the check.
func WithToken(token string) Option {
	return func(v *SHA256Validator) {
		if token != "" {
			v.token = token
		}
	}
}
