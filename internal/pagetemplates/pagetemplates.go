package pagetemplates

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

// Get returns the raw HTML skeleton for a template type. The caller copies
// it into the pages directory; templates themselves are never modified.
func Get(templateType string) ([]byte, error) {
	data, err := templateFS.ReadFile("templates/" + templateType + ".html")
	if err != nil {
		return nil, fmt.Errorf("unknown page template %q", templateType)
	}
	return data, nil
}

// Types lists the available template types in sorted order.
func Types() []string {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil
	}

	types := make([]string, 0, len(entries))
	for _, entry := range entries {
		types = append(types, strings.TrimSuffix(entry.Name(), ".html"))
	}
	sort.Strings(types)
	return types
}
