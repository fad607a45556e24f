package main

import (
	"os"

	"github.com/nicolagi/metapub/storage"
	"github.com/rogpeppe/rjson"
)

type config struct {
	APIURL string `json:"api_url"`
	Debug  bool   `json:"debug"`
}

// environment holds what is read from the process environment.
type environment struct {
	Token string `env:"GIST_TOKEN,notEmpty"`
}

func loadConfig(pathname string) (*config, error) {
	c := new(config)
	if pathname == "" {
		return c, nil
	}
	f, err := os.Open(pathname)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	err = rjson.NewDecoder(f).Decode(c)
	return c, err
}

func (c *config) applyDefaultsForMissingProperties() {
	if c.APIURL == "" {
		c.APIURL = storage.DefaultGistURL
	}
}
