package utils

import (
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

// InitI18NBundle loads translation files from the configured directory.
// English is the fallback language.
func InitI18NBundle() {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	dir := viper.GetString("i18n.dir")
	if dir == "" {
		dir = "i18n"
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		log.WithError(err).Error("fail to list translation files")
		return
	}
	for _, f := range files {
		if _, err := b.LoadMessageFile(f); err != nil {
			log.WithError(err).WithField("file", f).Error("fail to load translation file")
		}
	}

	bundle = b
}

// NewLocalizer returns a localizer that falls back to English when the
// requested languages have no translation.
func NewLocalizer(langs ...string) *i18n.Localizer {
	if bundle == nil {
		InitI18NBundle()
	}
	return i18n.NewLocalizer(bundle, langs...)
}
