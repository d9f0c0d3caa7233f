// Package schedule persists and resolves the daily trigger time. The
// configured hour and minute live in a single JSON file written by the
// configure tool and read once per scheduler startup; resolution turns
// them into the next absolute trigger instant, always strictly in the
// future.
package schedule
