package translator

import (
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var embedded embed.FS

var Translator *i18n.Bundle

type Config struct {
	// TranslationFolder overrides the embedded translations when set.
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

var matcher = language.NewMatcher([]language.Tag{language.English, language.French})

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	var (
		fsys fs.FS = embedded
		dir        = "translation"
	)
	if cfg.TranslationFolder != "" {
		fsys = os.DirFS(cfg.TranslationFolder)
		dir = "."
	}

	if len(cfg.SupportedLanguages) > 0 {
		tags := make([]language.Tag, 0, len(cfg.SupportedLanguages))
		for _, lang := range cfg.SupportedLanguages {
			tag, err := language.Parse(lang)
			if err != nil {
				zap.L().Warn("unsupported language", zap.String("lang", lang), zap.Error(err))
				continue
			}
			tags = append(tags, tag)
		}
		if len(tags) > 0 {
			matcher = language.NewMatcher(tags)
		}
	}

	files, err := fs.ReadDir(fsys, dir)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if _, err := Translator.LoadMessageFileFS(fsys, path.Join(dir, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// MatchLanguage picks the best supported language for an Accept-Language
// header value, defaulting to English.
func MatchLanguage(header string) string {
	if header == "" {
		return LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return LanguageEn
	}
	tag, _, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return LanguageEn
	}
	base, _ := tag.Base()
	return base.String()
}
