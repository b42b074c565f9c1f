package tests

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/vickyalvandob/task/pkg/translator"
)

const translationFolder = "../../../../../pkg/translator/translation"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  translationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
	os.Exit(m.Run())
}
