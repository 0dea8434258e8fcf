// Package config loads coalitions settings from defaults, an optional YAML
// file and COALITIONS_* environment variables, in increasing precedence,
// using viper. Keys are dotted ("layout.updates"); the environment form
// replaces dots with underscores (COALITIONS_LAYOUT_UPDATES).
package config
