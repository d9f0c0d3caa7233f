// Package domain defines the core business entities shared by the
// pipeline steps: subscriber records, uploaded artifact references,
// AI analysis reports, and persisted alerts. It has no dependencies on
// storage, transport, or AI service packages.
package domain
