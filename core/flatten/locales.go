package flatten

import (
	"fmt"
	"strings"
)

// Locales is an ordered sequence of locale groups. Each group is an ordered
// list of equivalent locale codes tried in priority order; the first code is
// the group's canonical locale.
type Locales [][]string

// ParseLocales parses a locale specification string. Groups are separated by
// ';' and fallback codes within a group by ',':
//
//	"en,en-US;de" -> [["en", "en-US"], ["de"]]
//
// An empty specification yields nil, meaning the source is single-locale and
// entries flatten to exactly one document.
func ParseLocales(spec string) (Locales, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	var locales Locales
	for _, rawGroup := range strings.Split(spec, ";") {
		rawGroup = strings.TrimSpace(rawGroup)
		if rawGroup == "" {
			continue
		}

		var group []string
		for _, code := range strings.Split(rawGroup, ",") {
			code = strings.TrimSpace(code)
			if code == "" {
				return nil, fmt.Errorf("locale group %q contains an empty code", rawGroup)
			}
			group = append(group, code)
		}
		locales = append(locales, group)
	}

	return locales, nil
}

// Canonical returns the canonical codes of all groups, in configured order.
func (l Locales) Canonical() []string {
	codes := make([]string, 0, len(l))
	for _, group := range l {
		codes = append(codes, group[0])
	}
	return codes
}
