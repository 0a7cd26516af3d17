// Package updater implements the version check for the uigen binary. It
// queries GitHub Releases for the latest version, compares it against the
// build version with semver, and powers the daily-cached startup banner.
// Installation of new versions is left to the user's package manager.
package updater
