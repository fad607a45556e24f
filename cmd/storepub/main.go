package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/nicolagi/metapub/publish"
	"github.com/nicolagi/metapub/storage"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	flags := pflag.NewFlagSet("storepub", pflag.ContinueOnError)
	flags.SetOutput(stdout)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(stdout, "Usage of storepub:")
		flags.PrintDefaults()
	}
	storageID := flags.String("storage-id", "", "id of the document to replace (required)")
	content := flags.String("file-content", "", "new content of the document")
	configFile := flags.String("config", "", "location of optional configuration file")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		// A ContinueOnError flag set leaves reporting to us.
		_, _ = fmt.Fprintln(stdout, err)
		flags.Usage()
		return 1
	}

	config, err := loadConfig(*configFile)
	if err != nil {
		log.WithFields(log.Fields{
			"err":  err,
			"path": *configFile,
		}).Error("Could not load configuration")
		return 1
	}
	config.applyDefaultsForMissingProperties()

	if config.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if *storageID == "" || *content == "" {
		_, _ = fmt.Fprintln(stdout, "--file-content must be provided, along with --storage-id")
		flags.Usage()
		return 1
	}

	logger := log.WithField("storage", *storageID)
	store := storage.NewRemoteStore(
		storage.WithBaseURL(config.StorageURL),
		storage.WithLogger(logger),
	)
	outcome, err := publish.NewStorageDispatcher(store).Publish(ctx, publish.Request{
		Target:  *storageID,
		Content: *content,
	})
	var statusErr *storage.StatusError
	switch {
	case errors.As(err, &statusErr):
		_, _ = fmt.Fprintf(stdout, "Failed to update storage: %d\n%s\n", statusErr.Code, statusErr.Body)
		return 1
	case err != nil:
		logger.WithField("err", err).Error("Could not update storage")
		return 1
	}
	_, _ = fmt.Fprintf(stdout, "Storage '%s' updated successfully\n", outcome.Key)
	return 0
}
