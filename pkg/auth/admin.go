package auth

import (
	"os"
	"strings"
)

// defaultAdminEmails is the built-in allow-list, overridable with ADMIN_EMAILS.
var defaultAdminEmails = []string{
	"admin@divinelits.com",
	"divya@divinelits.com",
	"garg.sid6665@gmail.com",
}

// AdminEmails returns the configured admin allow-list
func AdminEmails() []string {
	if raw := os.Getenv("ADMIN_EMAILS"); raw != "" {
		var emails []string
		for _, e := range strings.Split(raw, ",") {
			if e = strings.TrimSpace(e); e != "" {
				emails = append(emails, e)
			}
		}
		if len(emails) > 0 {
			return emails
		}
	}
	return defaultAdminEmails
}

// IsAdminEmail reports whether the email belongs to an admin user.
// This is the single authorization predicate shared by every admin operation.
func IsAdminEmail(email string) bool {
	for _, admin := range AdminEmails() {
		if strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}
