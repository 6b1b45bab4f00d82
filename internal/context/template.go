package context

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Template is one registered (source-pattern, target-snippet) pair. The
// pattern language is treated as an opaque exact-match-with-holes
// substitution: holes are written "$1", "$2", ... in both Pattern and
// Snippet and stand for "whatever source text appears here", copied
// verbatim into the same position in Snippet.
type Template struct {
	Pattern string `yaml:"pattern"`
	Snippet string `yaml:"snippet"`
}

var holePattern = regexp.MustCompile(`\$(\d+)`)

// compiledTemplate caches the regexp a Template's Pattern compiles to, built once
// at registration time rather than once per match attempt.
type compiledTemplate struct {
	Template
	re *regexp.Regexp
}

func compile(t Template) compiledTemplate {
	var sb strings.Builder
	sb.WriteString(`^`)
	last := 0
	for _, loc := range holePattern.FindAllStringIndex(t.Pattern, -1) {
		sb.WriteString(regexp.QuoteMeta(t.Pattern[last:loc[0]]))
		sb.WriteString(`(.+?)`)
		last = loc[1]
	}
	sb.WriteString(regexp.QuoteMeta(t.Pattern[last:]))
	sb.WriteString(`$`)
	return compiledTemplate{Template: t, re: regexp.MustCompile(sb.String())}
}

// TemplateRegistry holds every template recorded for the current run by
// the templates recording pass.
type TemplateRegistry struct {
	entries []compiledTemplate
}

// NewTemplateRegistry returns an empty registry.
func NewTemplateRegistry() *TemplateRegistry { return &TemplateRegistry{} }

// Register adds t to the registry.
func (r *TemplateRegistry) Register(t Template) {
	r.entries = append(r.entries, compile(t))
}

// LoadYAML reads a YAML file of `{pattern, snippet}` entries and registers
// every one. The templates recording pass does not go through it; it
// registers templates from "// @template:" comments instead.
func (r *TemplateRegistry) LoadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var templates []Template
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return err
	}
	for _, t := range templates {
		r.Register(t)
	}
	return nil
}

// Match attempts every registered template, in registration order,
// against the literal source text of an expression. It returns the
// substituted target snippet and true on the first match.
func (r *TemplateRegistry) Match(sourceText string) (string, bool) {
	for _, t := range r.entries {
		m := t.re.FindStringSubmatch(sourceText)
		if m == nil {
			continue
		}
		return substituteHoles(t.Snippet, m[1:]), true
	}
	return "", false
}

func substituteHoles(snippet string, captures []string) string {
	return holePattern.ReplaceAllStringFunc(snippet, func(hole string) string {
		n, err := strconv.Atoi(hole[1:])
		if err != nil || n < 1 || n > len(captures) {
			return hole
		}
		return captures[n-1]
	})
}
