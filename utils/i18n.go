package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var i18nBundle *i18n.Bundle

// InitI18NBundle loads every translation file from the directory named
// by the `i18n.dir` config key (default "i18n"). Missing files are not
// fatal: localization falls back to the default English messages.
func InitI18NBundle() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	dir := viper.GetString("i18n.dir")
	if dir == "" {
		dir = "i18n"
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.WithError(err).WithField("dir", dir).Warn("no translation directory, use default messages")
		i18nBundle = bundle
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		if _, err := bundle.LoadMessageFile(filepath.Join(dir, entry.Name())); err != nil {
			log.WithError(err).WithField("file", entry.Name()).Error("fail to load translation file")
		}
	}

	i18nBundle = bundle
}

// NewLocalizer returns a localizer for the given language preferences,
// falling back to English.
func NewLocalizer(langs ...string) *i18n.Localizer {
	if i18nBundle == nil {
		InitI18NBundle()
	}
	return i18n.NewLocalizer(i18nBundle, langs...)
}
