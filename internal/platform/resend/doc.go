// Package resend delivers analysis alert emails through the Resend
// API. It renders the report into a two-tone HTML body (expired items
// in red, expiring ones in orange) with a plain-text alternative, and
// treats delivery failure as a warning: a user whose email bounces
// still gets their alert persisted.
package resend
