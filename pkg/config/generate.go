package config

import (
	"strings"
)

// GenerateConfigContent generates the configuration file content with
// values commented out, ready to be dropped into a project and edited.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultConfigContent())
}

// commentOutConfigValues takes the TOML content and comments out all
// non-comment, non-blank lines that contain configuration values
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	inArray := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep plain section headers (e.g. [assemble]) as-is. Array-of-table
		// headers ([[filters.msys2]]) are commented out: left bare they would
		// declare an empty filter rule.
		if !inArray && strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") &&
			!strings.HasPrefix(trimmed, "[[") {
			result = append(result, line)
			continue
		}

		// Multi-line arrays are commented out line by line
		if strings.HasSuffix(trimmed, "[") {
			inArray = true
		} else if inArray && trimmed == "]" {
			inArray = false
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
