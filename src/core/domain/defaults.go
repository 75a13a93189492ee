package domain

import "time"

// RecentJokesLimit is how many joke titles the jokes layout lists.
const RecentJokesLimit = 5

// DefaultSessionMaxAge is the absolute lifetime of a session cookie.
const DefaultSessionMaxAge = 30 * 24 * time.Hour

// DefaultRedirect is where a successful login lands when no redirectTo was given.
const DefaultRedirect = "/jokes"
