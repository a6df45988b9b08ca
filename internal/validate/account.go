package validate

import "unicode/utf8"

const (
	MinUsernameLen = 3
	MinPasswordLen = 6
)

func Username(username string) bool {
	return utf8.RuneCountInString(username) >= MinUsernameLen
}

// Password validates a washerman password. On update an empty password means
// "leave unchanged" and is accepted.
func Password(password string, creating bool) bool {
	if password == "" {
		return !creating
	}
	return utf8.RuneCountInString(password) >= MinPasswordLen
}
