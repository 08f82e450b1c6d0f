package render

import (
	"fmt"
	"sort"
	"strings"

	"attraction-cms-backend/internal/models"
)

func contentMap(section models.PageSection) map[string]interface{} {
	if section.Content == nil {
		return map[string]interface{}{}
	}
	return section.Content
}

func getString(content map[string]interface{}, key string) string {
	if value, ok := content[key]; ok {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}

// requireString is for fields a renderer dereferences unconditionally;
// their absence is a render error, not a silent skip.
func requireString(content map[string]interface{}, key, sectionType string) (string, error) {
	value := strings.TrimSpace(getString(content, key))
	if value == "" {
		return "", fmt.Errorf("%s section content is missing %q", sectionType, key)
	}
	return value, nil
}

func getSlice(content map[string]interface{}, key string) []interface{} {
	if value, ok := content[key]; ok {
		if items, ok := value.([]interface{}); ok {
			return items
		}
	}
	return nil
}

// inlineStyles flattens an editor-supplied style map into a deterministic
// CSS declaration list.
func inlineStyles(styles models.JSONMap) string {
	if len(styles) == 0 {
		return ""
	}

	keys := make([]string, 0, len(styles))
	for key := range styles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var decls []string
	for _, key := range keys {
		value, ok := styles[key].(string)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		decls = append(decls, fmt.Sprintf("%s: %s", key, strings.TrimSpace(value)))
	}
	return strings.Join(decls, "; ")
}
