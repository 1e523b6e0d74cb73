package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/rhpartnersafric/website-api/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationFailedError porte la liste des erreurs champ par champ pour que
// le formulaire puisse être re-présenté au visiteur avec sa saisie d'origine.
type ValidationFailedError struct {
	Fields []ValidationError
}

func (e *ValidationFailedError) Error() string {
	msg := "validation failed: "
	for _, f := range e.Fields {
		msg += f.Field + " (" + f.Message + "), "
	}
	return strings.TrimSuffix(msg, ", ")
}

func ValidateContactInput(input ContactInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FullName) == "" {
		errors = append(errors, ValidationError{"full_name", "is required"})
	} else if len(input.FullName) > 150 {
		errors = append(errors, ValidationError{"full_name", "must not exceed 150 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.Service != "" && !entity.IsValidContactService(input.Service) {
		errors = append(errors, ValidationError{"service", "is not a known service code"})
	}

	if strings.TrimSpace(input.Message) == "" {
		errors = append(errors, ValidationError{"message", "is required"})
	}

	return errors
}

func ValidateNewsletterInput(input NewsletterInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if len(input.FullName) > 150 {
		errors = append(errors, ValidationError{"full_name", "must not exceed 150 characters"})
	}

	return errors
}

func ValidateJobApplicationInput(input JobApplicationInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	}
	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"last_name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	}

	if input.CV == nil {
		errors = append(errors, ValidationError{"cv", "file is required"})
	} else if strings.TrimSpace(input.CV.Filename) == "" {
		errors = append(errors, ValidationError{"cv", "filename is required"})
	}

	if input.CoverLetter == nil {
		errors = append(errors, ValidationError{"cover_letter", "file is required"})
	} else if strings.TrimSpace(input.CoverLetter.Filename) == "" {
		errors = append(errors, ValidationError{"cover_letter", "filename is required"})
	}

	return errors
}
