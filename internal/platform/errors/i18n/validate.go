package i18n

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/minigames/internal/platform/errors"
	i18ncatalog "github.com/louisbranch/minigames/internal/platform/i18n/catalog"
)

// ValidateCatalogs checks that every embedded locale resolves to its own
// catalog, translates every base-locale key and has a template for every
// error code.
func ValidateCatalogs() error {
	bundle := i18ncatalog.Default()
	var problems []string
	for _, locale := range bundle.Locales() {
		cat := GetCatalog(locale)
		if cat.Locale() != locale {
			problems = append(problems, fmt.Sprintf("%s resolves to %s", locale, cat.Locale()))
		}
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("%s missing keys %s", locale, strings.Join(missing, ", ")))
		}
		for _, code := range apperrors.Codes() {
			if _, ok := cat.messages[string(code)]; !ok {
				problems = append(problems, fmt.Sprintf("%s missing error code %s", locale, code))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid message catalogs: %s", strings.Join(problems, "; "))
	}
	return nil
}
