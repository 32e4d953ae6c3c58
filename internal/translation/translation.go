package translation

import (
	"embed"
	"encoding/json"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves localized message templates. English is the default
// language; unknown languages and missing translations fall back to it.
type Translator struct {
	bundle *i18n.Bundle
}

func New() (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, err
		}
		log.Debugf("loaded locale file: %s", name)
	}

	return &Translator{bundle: bundle}, nil
}

// Localize renders the message identified by messageID in the best match for
// lang (an Accept-Language value). Returns the message ID itself when no
// translation exists in any language, so callers always get a string back.
func (t *Translator) Localize(lang string, messageID string, data map[string]any) string {
	localizer := i18n.NewLocalizer(t.bundle, lang)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		log.Warnf("failed to localize %q: %v", messageID, err)
		return messageID
	}
	return msg
}
