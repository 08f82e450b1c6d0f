package constants

// AuthTokenCookieName is the cookie carrying the editor session JWT.
const AuthTokenCookieName = "auth_token"

// SectionPlaceholder marks where rendered page sections are spliced into a
// static page file. Pages created before the marker existed get it injected
// just before </body> during assembly.
const SectionPlaceholder = "<!-- DYNAMIC_SECTIONS_PLACEHOLDER -->"

// PageTemplateTypes is the closed set of templates a page can be created from.
var PageTemplateTypes = []string{"attraction", "things-to-do", "event", "restaurant", "hotel"}

// PageSectionTypes is the closed set of content block types.
var PageSectionTypes = []string{"text", "image", "gallery", "video", "form", "map", "custom"}

func IsPageTemplateType(t string) bool {
	for _, v := range PageTemplateTypes {
		if v == t {
			return true
		}
	}
	return false
}

func IsPageSectionType(t string) bool {
	for _, v := range PageSectionTypes {
		if v == t {
			return true
		}
	}
	return false
}
