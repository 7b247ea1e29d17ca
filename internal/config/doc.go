// Package config resolves the crawler's runtime settings from overlapping
// environment-variable naming schemes (legacy actor_/apify_ prefixes and the
// newer crawlee_ prefix) with a fixed precedence order per setting. Raw string
// input is coerced into typed values; malformed input fails construction with
// a descriptive error rather than being silently defaulted. The package also
// manages the single process-wide Configuration instance, created lazily on
// first access.
package config
