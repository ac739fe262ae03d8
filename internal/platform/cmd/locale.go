package cmd

import (
	"os"
	"strings"

	"golang.org/x/text/message"

	"github.com/louisbranch/minigames/internal/platform/i18n/catalog"
)

// ResolveLocale picks the catalog locale for a command. An explicit request
// wins; otherwise LC_ALL, LC_MESSAGES and LANG are consulted in POSIX order.
func ResolveLocale(requested string) string {
	bundle := catalog.Default()
	if strings.TrimSpace(requested) != "" {
		return bundle.Match(requested)
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return bundle.Match(value)
		}
	}
	return catalog.BaseLocale
}

// Printer returns the message printer for a resolved locale.
func Printer(locale string) *message.Printer {
	return catalog.Default().Printer(locale)
}
