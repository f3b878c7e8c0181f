package utils

import (
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Bundle is the global translation bundle
var Bundle *i18n.Bundle

// InitI18n initializes the i18n system
func InitI18n() error {
	Bundle = i18n.NewBundle(language.English)
	Bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	// Load English locale file
	_, err := Bundle.LoadMessageFile("locales/active.en.toml")
	if err != nil {
		Log.Warn("Failed to load English locale: %v", err)
	}

	// Load Japanese locale file
	_, err = Bundle.LoadMessageFile("locales/active.ja.toml")
	if err != nil {
		Log.Warn("Failed to load Japanese locale: %v", err)
	}

	Log.Info("i18n system initialized")
	return nil
}

// GetLocalizer returns a localizer for the specified language
func GetLocalizer(lang string) *i18n.Localizer {
	if Bundle == nil {
		InitI18n()
	}
	if lang == "" {
		lang = "en"
	}
	return i18n.NewLocalizer(Bundle, lang)
}

// T translates a message ID
func T(localizer *i18n.Localizer, messageID string) string {
	if localizer == nil {
		return messageID
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: messageID,
	})
	if err != nil {
		Log.Debug("Translation error for '%s': %v", messageID, err)
		return messageID
	}
	return msg
}
