// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"msgc/internal/catalog"
)

// DefaultFile конфигурация в рабочем каталоге, читается если существует.
const DefaultFile = "msgc.yaml"

const (
	EnvInput     = "MSGC_INPUT"
	EnvOutput    = "MSGC_OUTPUT"
	EnvPrefix    = "MSGC_PREFIX"
	EnvStrict    = "MSGC_STRICT"
	EnvGoPackage = "MSGC_GO_PACKAGE"
)

type Config struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"` // Пусто или "-" означает stdout
	Prefix string `yaml:"prefix"`
	Strict bool   `yaml:"strict"`
	Go     Go     `yaml:"go"`
}

type Go struct {
	Package  string `yaml:"package"`
	Func     string `yaml:"func"`
	LangFunc string `yaml:"langFunc"`
}

func Default() Config {
	return Config{
		Input:  catalog.DefaultInput,
		Output: "-",
		Prefix: "noct",
		Go: Go{
			Package:  "translation",
			Func:     "Gettext",
			LangFunc: "SystemLanguage",
		},
	}
}

// LoadDotEnv подгружает .env в окружение процесса. Файл необязателен.
func LoadDotEnv(files ...string) error {

	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, file := range files {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return errors.Wrap(godotenv.Load(existing...), "load .env")
}

// Load собирает конфигурацию: значения по умолчанию, затем файл (если есть), затем окружение.
// Флаги командной строки накладываются поверх вызывающей стороной.
func Load(path string, getenv func(string) string) (cfg Config, err error) {

	cfg = Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	var data []byte
	switch data, err = os.ReadFile(path); {
	case err == nil:
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if cfg, err = cfg.fromEnv(getenv); err != nil {
		return
	}
	err = cfg.Validate()
	return
}

func (c Config) fromEnv(getenv func(string) string) (Config, error) {

	if getenv == nil {
		return c, nil
	}
	if v := getenv(EnvInput); v != "" {
		c.Input = v
	}
	if v := getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := getenv(EnvPrefix); v != "" {
		c.Prefix = v
	}
	if v := getenv(EnvGoPackage); v != "" {
		c.Go.Package = v
	}
	if v := strings.TrimSpace(getenv(EnvStrict)); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return c, errors.Wrapf(err, "parse %s", EnvStrict)
		}
		c.Strict = strict
	}
	return c, nil
}

// Validate проверяет, что префикс годится как часть C-идентификатора.
func (c Config) Validate() error {

	if c.Input == "" {
		return errors.New("input file is not set")
	}
	if !isCIdentifier(c.Prefix) {
		return errors.Errorf("prefix %q is not a valid C identifier", c.Prefix)
	}
	return nil
}

func isCIdentifier(s string) bool {

	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
