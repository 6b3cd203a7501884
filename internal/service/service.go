// Package service holds the LightBNB use cases: account registration and
// login, property search and listing, and a guest's reservations.
//
// Services turn missing records into errs.HTTPError values (404 or 401) and
// leave database failures wrapped for the global error handler.
package service
