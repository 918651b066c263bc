package usecase_test

import (
	"errors"
	"testing"

	"codeforge-backend/internal/domain"
	"codeforge-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionValidator(t *testing.T) {
	v := usecase.NewSubmissionValidator(nil)

	t.Run("Should accept a complete form", func(t *testing.T) {
		sub, err := v.Validate(domain.ContactForm{Name: "Ada", Email: "ada@example.com", Project: "Need a website"})
		require.NoError(t, err)
		assert.Equal(t, domain.Submission{Name: "Ada", Email: "ada@example.com", Project: "Need a website"}, sub)
	})

	t.Run("Should trim name and email", func(t *testing.T) {
		sub, err := v.Validate(domain.ContactForm{Name: "  Ada ", Email: " ada@example.com\n", Project: "Website"})
		require.NoError(t, err)
		assert.Equal(t, "Ada", sub.Name)
		assert.Equal(t, "ada@example.com", sub.Email)
	})

	t.Run("Should keep leading and trailing project whitespace", func(t *testing.T) {
		project := "\n  - landing page\n  - blog\n\n"
		sub, err := v.Validate(domain.ContactForm{Name: "Ada", Email: "ada@example.com", Project: project})
		require.NoError(t, err)
		assert.Equal(t, project, sub.Project)
	})

	t.Run("Should treat a whitespace-only project as missing", func(t *testing.T) {
		_, err := v.Validate(domain.ContactForm{Name: "Ada", Email: "ada@example.com", Project: " \n\t "})
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, domain.MissingField, verr.Kind)
		assert.Equal(t, "project", verr.Field)
	})

	t.Run("Should keep the project text verbatim inside", func(t *testing.T) {
		project := "Line one\nLine two <b>bold</b> & more"
		sub, err := v.Validate(domain.ContactForm{Name: "Ada", Email: "ada@example.com", Project: project})
		require.NoError(t, err)
		assert.Equal(t, project, sub.Project)
	})

	missing := []struct {
		name  string
		form  domain.ContactForm
		field string
	}{
		{"empty name", domain.ContactForm{Name: "", Email: "ada@example.com", Project: "x"}, "name"},
		{"absent name", domain.ContactForm{Email: "ada@example.com", Project: "x"}, "name"},
		{"blank email", domain.ContactForm{Name: "Ada", Email: "   ", Project: "x"}, "email"},
		{"absent project", domain.ContactForm{Name: "Ada", Email: "ada@example.com"}, "project"},
		{"non-string name", domain.ContactForm{Name: 42, Email: "ada@example.com", Project: "x"}, "name"},
		{"non-string project", domain.ContactForm{Name: "Ada", Email: "ada@example.com", Project: []any{"x"}}, "project"},
		{"everything absent", domain.ContactForm{}, "name"},
	}
	for _, tc := range missing {
		t.Run("Should report missing field for "+tc.name, func(t *testing.T) {
			_, err := v.Validate(tc.form)
			require.Error(t, err)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, domain.MissingField, verr.Kind)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	badEmails := []string{"not-an-email", "ada@example", "ada@@example.com", "a da@example.com", "@example.com", "ada@.com"}
	for _, addr := range badEmails {
		t.Run("Should reject email "+addr, func(t *testing.T) {
			_, err := v.Validate(domain.ContactForm{Name: "Bob", Email: addr, Project: "x"})
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidEmailFormat)
		})
	}

	t.Run("Should prefer missing field over invalid email", func(t *testing.T) {
		_, err := v.Validate(domain.ContactForm{Name: "Bob", Email: "not-an-email", Project: ""})
		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, domain.MissingField, verr.Kind)
		assert.Equal(t, "project", verr.Field)
	})
}
