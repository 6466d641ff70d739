// Package translate formats diagnostic messages in the user's locale.
//
// Message text is authored in en-US Sprintf() form and looked up through
// a golang.org/x/text/message printer matched against the host locales.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ilvm: locale: %v", err)
		locales = nil
	}

	// en-US is the authoring language and the fallback.
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
