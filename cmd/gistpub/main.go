package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/caarlos0/env/v11"
	"github.com/nicolagi/metapub/publish"
	"github.com/nicolagi/metapub/storage"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], nil, os.Stdout)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code. A nil environ
// means the process environment.
func run(ctx context.Context, args []string, environ map[string]string, stdout io.Writer) int {
	flags := pflag.NewFlagSet("gistpub", pflag.ContinueOnError)
	flags.SetOutput(stdout)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(stdout, "Usage of gistpub:")
		flags.PrintDefaults()
	}
	gistID := flags.String("gist-id", "", "id of the gist to update (required)")
	actor := flags.String("actor", "", "name of the actor publishing the update")
	content := flags.String("file-content", "", "new content of the gist file")
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

	if *gistID == "" || *actor == "" || *content == "" {
		_, _ = fmt.Fprintln(stdout, "Please provide the gist id, actor and file content to update the gist.")
		flags.Usage()
		return 1
	}

	var e environment
	if err := env.ParseWithOptions(&e, env.Options{Environment: environ}); err != nil {
		log.WithField("err", err).Debug("Could not read environment")
		_, _ = fmt.Fprintln(stdout, "GIST_TOKEN environment variable is not set.")
		return 1
	}

	logger := log.WithFields(log.Fields{
		"gist":  *gistID,
		"actor": *actor,
	})
	gist, err := storage.NewGist(*gistID, e.Token,
		storage.WithBaseURL(config.APIURL),
		storage.WithLogger(logger),
	)
	if err != nil {
		logger.WithField("err", err).Error("Could not create gist client")
		return 1
	}

	outcome, err := publish.NewGistDispatcher(gist).Publish(ctx, publish.Request{
		Target:  *gistID,
		Content: *content,
		Actor:   *actor,
	})
	var statusErr *storage.StatusError
	switch {
	case errors.As(err, &statusErr):
		_, _ = fmt.Fprintf(stdout, "Failed to update gist: %d\n%s\n", statusErr.Code, statusErr.Body)
		return 1
	case err != nil:
		logger.WithField("err", err).Error("Could not update gist")
		return 1
	}
	_, _ = fmt.Fprintf(stdout, "Gist '%s' updated successfully\n", outcome.Key)
	return 0
}
