package translator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"

	"github.com/vickyalvandob/task/pkg/translator"
)

func TestInitTranslator_LoadsMessagesFromFolder(t *testing.T) {
	dir := t.TempDir()

	enFile := filepath.Join(dir, "en.toml")
	content := []byte(`
hello = "Hello english"
`)
	require.NoError(t, os.WriteFile(enFile, content, 0644))

	translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	localizer := i18n.NewLocalizer(translator.Translator, translator.LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "hello"})
	require.NoError(t, err)
	require.Equal(t, "Hello english", msg)
}

func TestInitTranslator_LoadsEmbeddedMessages(t *testing.T) {
	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	localizer := i18n.NewLocalizer(translator.Translator, translator.LanguageFr)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: "taskNotFound"})
	require.NoError(t, err)
	require.Equal(t, "Tâche introuvable", msg)
}

func TestInitTranslator_InvalidFolder(t *testing.T) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "/path/does/not/exist",
		SupportedLanguages: []string{translator.LanguageEn},
	})
}

func TestMatchLanguage(t *testing.T) {
	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	cases := map[string]string{
		"":                       translator.LanguageEn,
		"fr":                     translator.LanguageFr,
		"fr-CA,fr;q=0.9,en;q=0.8": translator.LanguageFr,
		"en-US":                  translator.LanguageEn,
		"de-DE":                  translator.LanguageEn,
		";;;":                    translator.LanguageEn,
	}
	for header, want := range cases {
		require.Equal(t, want, translator.MatchLanguage(header), "header %q", header)
	}
}
