// Package filter implements the rule engine that prunes package manifests
// before they enter the copy plan. Rules are data: a package-name pattern
// plus a list of file-path patterns, both regular expressions. Rules are
// compiled eagerly so malformed patterns fail at configuration load time,
// never mid-traversal.
package filter

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/payload/pkg/errors"
)

// Rule suppresses files from the manifests of matching packages.
// A rule applies to every package whose name matches Package; it removes
// every manifest entry matching any pattern in Files.
type Rule struct {
	Package string   `koanf:"package" toml:"package" yaml:"package"`
	Files   []string `koanf:"files" toml:"files" yaml:"files"`
}

// CompiledRule is a Rule with its patterns compiled. The file patterns are
// folded into a single alternation.
type CompiledRule struct {
	rule  Rule
	pkg   *regexp.Regexp
	files *regexp.Regexp
}

// Source returns the rule this compiled rule was built from.
func (c *CompiledRule) Source() Rule { return c.rule }

// AppliesTo reports whether the rule targets the named package.
func (c *CompiledRule) AppliesTo(pkg string) bool {
	return c.pkg.MatchString(pkg)
}

// Excludes reports whether the rule removes the given manifest path.
func (c *CompiledRule) Excludes(path string) bool {
	if c.files == nil {
		return false
	}
	return c.files.MatchString(filepath.ToSlash(path))
}

// Compile validates and compiles a rule set. Any malformed pattern is
// reported with the offending rule and pattern.
func Compile(rules []Rule) ([]CompiledRule, error) {
	compiled := make([]CompiledRule, 0, len(rules))
	for i, rule := range rules {
		if rule.Package == "" {
			return nil, errors.Newf(errors.ErrPatternInvalid,
				"filter rule %d has an empty package pattern", i)
		}
		pkgRe, err := regexp.Compile(rule.Package)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPatternInvalid,
				"filter rule %d: invalid package pattern %q", i, rule.Package)
		}

		cr := CompiledRule{rule: rule, pkg: pkgRe}
		if len(rule.Files) > 0 {
			filesRe, err := regexp.Compile(alternation(rule.Files))
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrPatternInvalid,
					"filter rule %d: invalid file pattern in %q", i, strings.Join(rule.Files, ", "))
			}
			cr.files = filesRe
		}
		compiled = append(compiled, cr)
	}
	return compiled, nil
}

// alternation folds the file patterns of a rule into one expression.
// Each pattern is wrapped in a non-capturing group so alternation never
// changes its meaning.
func alternation(patterns []string) string {
	groups := make([]string, len(patterns))
	for i, p := range patterns {
		groups[i] = "(?:" + p + ")"
	}
	return strings.Join(groups, "|")
}

// Apply returns the manifest minus every file excluded by a rule that
// applies to the named package. Exclusions accumulate across rules; a file
// excluded once stays excluded. Input order is preserved.
func Apply(pkg string, manifest []string, rules []CompiledRule) []string {
	if len(rules) == 0 || len(manifest) == 0 {
		return manifest
	}

	excluded := make(map[string]bool)
	for i := range rules {
		rule := &rules[i]
		if !rule.AppliesTo(pkg) {
			continue
		}
		for _, path := range manifest {
			if excluded[path] {
				continue
			}
			if rule.Excludes(path) {
				excluded[path] = true
			}
		}
	}

	if len(excluded) == 0 {
		return manifest
	}

	kept := make([]string, 0, len(manifest)-len(excluded))
	for _, path := range manifest {
		if !excluded[path] {
			kept = append(kept, path)
		}
	}
	return kept
}
