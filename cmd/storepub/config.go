package main

import (
	"os"

	"github.com/nicolagi/metapub/storage"
	"github.com/rogpeppe/rjson"
)

type config struct {
	StorageURL string `json:"storage_url"`
	Debug      bool   `json:"debug"`
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
	if c.StorageURL == "" {
		c.StorageURL = storage.DefaultStorageURL
	}
}
