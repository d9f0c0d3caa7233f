// Package config handles loading, validation, and access to application
// configuration from environment variables and config files. Settings are
// grouped per concern (scheduler, database, LLM, email, pipeline); each
// binary reads only the groups it needs, so groups are optional here and
// their presence is enforced by the component constructors that consume
// them.
package config
