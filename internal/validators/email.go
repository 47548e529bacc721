package validators

import "net/mail"

// IsEmailValid is an offline shape check; registration must not
// depend on resolver availability.
func IsEmailValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
