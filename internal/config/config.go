package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	Site     Site     `koanf:"site"`
	Database Database `koanf:"db"`
}

// Site holds the platform-wide defaults used when a site carries no
// configuration override of its own.
type Site struct {
	Domain           string `koanf:"domain"`
	PlatformName     string `koanf:"platformname"`
	EmailFromAddress string `koanf:"emailfromaddress"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:8000",
		Site: Site{
			Domain:           "localhost:8000",
			PlatformName:     "Open edX",
			EmailFromAddress: "registration@example.com",
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "edxapp",
			Pass:   "",
			Name:   "edxapp",
			Schema: "edxapp",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "EDX_",
		TransformFunc: func(k, v string) (string, any) {
			// EDX_SITE_PLATFORMNAME -> site.platformname
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "EDX_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
