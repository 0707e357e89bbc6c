package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_KNOWLEDGE_FILE replaces the embedded knowledge base when set
	KnowledgeFile string `envconfig:"E2E_KNOWLEDGE_FILE"`
	Tokenizer     string `envconfig:"E2E_TOKENIZER" default:"regexp"`
	Lemmatizer    string `envconfig:"E2E_LEMMATIZER" default:"porter"`
	// E2E_DEBUG logs every similarity ranking
	Debug bool `envconfig:"E2E_DEBUG" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
