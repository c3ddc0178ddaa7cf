// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	ticketDomain "github.com/dannymato/ticket-generator/internal/ticket/domain"
	customValidation "github.com/dannymato/ticket-generator/internal/validation"
)

// SubmitRunRequest contains the parameters for submitting a generation run.
type SubmitRunRequest struct {
	Capitals    bool   `json:"capitals"`
	Lowercase   bool   `json:"lowercase"`
	Digits      bool   `json:"digits"`
	Specials    bool   `json:"specials"`
	Exclude     string `json:"exclude"`
	FilePath    string `json:"file_path"`
	TokenCount  int    `json:"token_count"`
	TokenLength int    `json:"token_length"`
}

// Validate checks if the submit run request is valid.
func (r *SubmitRunRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FilePath,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.TokenCount,
			validation.Required,
			validation.Min(1),
		),
		validation.Field(&r.TokenLength,
			validation.Required,
			validation.Min(1),
			validation.Max(ticketDomain.MaxTokenLength),
		),
		validation.Field(&r.Capitals,
			validation.By(r.validateClassSelected),
		),
	)
}

// validateClassSelected requires at least one character class to be enabled.
func (r *SubmitRunRequest) validateClassSelected(_ interface{}) error {
	if !r.Capitals && !r.Lowercase && !r.Digits && !r.Specials {
		return validation.NewError(
			"validation_no_class_selected",
			"at least one character class must be selected",
		)
	}
	return nil
}

// ClassSelection maps the request's class flags and exclusion list to the
// domain configuration.
func (r *SubmitRunRequest) ClassSelection() ticketDomain.ClassSelection {
	return ticketDomain.ClassSelection{
		Capitals:  r.Capitals,
		Lowercase: r.Lowercase,
		Digits:    r.Digits,
		Specials:  r.Specials,
		Exclude:   r.Exclude,
	}
}

// AlphabetQuery contains the query parameters for previewing the character set.
type AlphabetQuery struct {
	Capitals  bool   `form:"capitals"`
	Lowercase bool   `form:"lowercase"`
	Digits    bool   `form:"digits"`
	Specials  bool   `form:"specials"`
	Exclude   string `form:"exclude"`
}

// ClassSelection maps the query to the domain configuration.
func (q *AlphabetQuery) ClassSelection() ticketDomain.ClassSelection {
	return ticketDomain.ClassSelection{
		Capitals:  q.Capitals,
		Lowercase: q.Lowercase,
		Digits:    q.Digits,
		Specials:  q.Specials,
		Exclude:   q.Exclude,
	}
}
