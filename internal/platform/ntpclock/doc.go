// Package ntpclock provides the pipeline's notion of "today". Analysis
// prompts and alert records are stamped with a network-sourced UTC date
// so that a skewed host clock cannot shift expiry calculations; when no
// NTP server is reachable the clock falls back to the system time in
// UTC and logs the degradation.
package ntpclock
