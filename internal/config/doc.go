// Package config loads project-level settings from uigen.yaml in the working
// directory, with UIGEN_* environment overrides. A config file, when present,
// is validated against an embedded JSON Schema before use. The package also
// resolves the user-level ~/.uigen/ directory that holds the version-check
// cache.
package config
