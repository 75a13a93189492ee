// Package domain contains the core domain model for the application.
//
// This package defines:
//   - Entities: User and Joke, plus the JokeListItem projection
//   - Domain Errors: the error taxonomy shared by every layer
//   - Validation: the length rules applied to credentials and jokes
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Validation helpers are pure and total; an empty message means valid
package domain
