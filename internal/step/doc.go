// Package step executes one external pipeline step as a subprocess and
// classifies the result. Steps are independently executable units
// resolved by name against a base directory; a step either succeeds
// (exit status zero) or fails with one of three terminal
// classifications: not found, nonzero exit, or an unexpected crash
// during invocation. Retrying is never done here.
package step
