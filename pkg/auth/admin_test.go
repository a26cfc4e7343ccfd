package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdminEmail(t *testing.T) {
	assert.True(t, IsAdminEmail("admin@divinelits.com"))
	assert.True(t, IsAdminEmail("ADMIN@DivineLits.com"), "allow-list is case-insensitive")
	assert.False(t, IsAdminEmail("shopper@example.com"))
	assert.False(t, IsAdminEmail(""))
}

func TestAdminEmailsOverride(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "ops@example.com, second@example.com")

	emails := AdminEmails()
	assert.Equal(t, []string{"ops@example.com", "second@example.com"}, emails)
	assert.True(t, IsAdminEmail("ops@example.com"))
	assert.False(t, IsAdminEmail("admin@divinelits.com"), "override replaces the default list")
}
