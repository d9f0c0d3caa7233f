// Package artifact retrieves and normalizes the inventory sources a
// user has linked or uploaded: Google Sheets (exported as CSV), raw CSV
// uploads, and menu PDFs. Downloads land in the user's scratch
// directory; the package also renders tabular content into the plain
// text form embedded in analysis prompts.
package artifact
