package portfolio

// SocialLinksKey is the document field holding the ordered social link list.
const SocialLinksKey = "social_links"

// Keys recognised on individual social link entries. Entries remain plain
// mappings inside the document; these constants and the typed view below
// exist so callers outside the augmenter do not scatter string literals.
const (
	SVGPathKey = "svg_path"
	SVGDataKey = "svg_data"
)

// SocialLink is a typed, read-only view over a social link entry. SVGPath is
// optional; entries without one are passed through untouched by the
// augmenter.
type SocialLink struct {
	Name    string
	URL     string
	SVGPath string
	SVGData string
}

// SocialLinks extracts the typed view from a decoded document. Entries that
// are not mappings are skipped, mirroring the augmenter's predicate.
func SocialLinks(data map[string]any) []SocialLink {
	raw, ok := data[SocialLinksKey].([]any)
	if !ok {
		return nil
	}

	out := make([]SocialLink, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, SocialLink{
			Name:    stringField(m, "name"),
			URL:     stringField(m, "url"),
			SVGPath: stringField(m, SVGPathKey),
			SVGData: stringField(m, SVGDataKey),
		})
	}
	return out
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
