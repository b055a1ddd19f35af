package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeEmail(t *testing.T) {
	t.Run("Lowercase and Trim", func(t *testing.T) {
		assert.Equal(t, "test@example.com", SanitizeEmail("  TEST@EXAMPLE.COM  "), "email should be lowercase and trimmed")
	})

	t.Run("Already Clean", func(t *testing.T) {
		assert.Equal(t, "patient@clinic.org", SanitizeEmail("patient@clinic.org"))
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Equal(t, "", SanitizeEmail("   "))
	})
}

func TestSanitizeName(t *testing.T) {
	t.Run("Collapse Inner Whitespace", func(t *testing.T) {
		assert.Equal(t, "Siti Rahma", SanitizeName("  Siti   Rahma  "), "runs of whitespace should collapse to single spaces")
	})

	t.Run("Single Word", func(t *testing.T) {
		assert.Equal(t, "Budi", SanitizeName("Budi"))
	})

	t.Run("Tabs and Newlines", func(t *testing.T) {
		assert.Equal(t, "Dr. Sari Wijaya", SanitizeName("Dr.\tSari\nWijaya"))
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Equal(t, "", SanitizeName("   "))
	})
}
