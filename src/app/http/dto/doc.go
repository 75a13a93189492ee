// Package dto contains the form payloads bound from HTTP requests.
//
// Forms are separate from domain entities so the HTML field names and
// binding rules can change without touching the core. Text fields are
// pointers: `binding:"required"` then means "the field was submitted",
// while an empty value is still accepted and left to domain validation.
//
// Example:
//
//	var form dto.JokeForm
//	if err := c.ShouldBind(&form); err != nil {
//	    // one of name or content was not submitted at all
//	}
package dto
