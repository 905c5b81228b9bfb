package locale

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator renders dashboard strings in English or Arabic.
type Translator struct {
	catalog *catalog.Builder
}

func NewTranslator() (*Translator, error) {

	builder := catalog.NewBuilder(catalog.Fallback(language.English))

	for tag, messages := range map[language.Tag]map[string]string{
		language.English: english,
		language.Arabic:  arabic,
	} {
		for key, msg := range messages {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("set %s message %q: %w", tag, key, err)
			}
		}
	}

	return &Translator{catalog: builder}, nil
}

// Text formats the message stored under key. Unknown keys are printed as is.
func (t *Translator) Text(l Locale, key string, args ...any) string {

	printer := message.NewPrinter(l.Tag(), message.Catalog(t.catalog))
	return printer.Sprintf(key, args...)
}

// Footer is the "Showing x to y of z entries" line under the table.
func (t *Translator) Footer(l Locale, startEntry, endEntry, totalEntries int) string {
	return t.Text(l, MsgNumberOfEntries, startEntry, endEntry, totalEntries)
}
