// Package config reads the linelint TOML configuration file.
//
// Here's an example configuration file:
//
//	output = "json"
//	skip = ["vendor", ".git"]
//	exclude = ["testdata/"]
//	sort = ["path", "line"]
//
// Command-line flags take precedence over values read from the file.
package config
