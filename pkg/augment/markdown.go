package augment

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

var (
	markdownOnce   sync.Once
	markdownEngine goldmark.Markdown
)

func markdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownEngine = goldmark.New(
			goldmark.WithExtensions(meta.Meta),
		)
	})
	return markdownEngine
}

// renderMarkdownFields converts configured prose fields into HTML siblings.
// A field "about" becomes "about_html"; a leading YAML front matter block is
// stripped from the output and stored under "about_meta".
func (a *Augmenter) renderMarkdownFields(data map[string]any) error {
	for _, key := range a.markdownFields {
		raw, ok := data[key].(string)
		if !ok {
			continue
		}

		var buf bytes.Buffer
		pc := parser.NewContext()
		if err := markdown().Convert([]byte(raw), &buf, parser.WithContext(pc)); err != nil {
			return fmt.Errorf("augment: render markdown field %q: %w", key, err)
		}

		data[key+"_html"] = buf.String()
		if metaData := meta.Get(pc); len(metaData) > 0 {
			data[key+"_meta"] = metaData
		}
	}
	return nil
}
