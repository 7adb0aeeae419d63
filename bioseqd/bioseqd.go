/*

Bioseqd exposes the bioseq sequence analysis toolkit as a Model
Context Protocol server on standard input/output.

The basic usage looks like this:

	bioseqd

, this serves all tools with remote BLAST search going straight to
NCBI.

You can cache BLAST results between runs and raise the log level:

	bioseqd -blast-cache blast.db -loglevel info

To see all the options run:

	bioseqd -h

*/
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/op/go-logging"
	bolt "go.etcd.io/bbolt"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/bioseqkit/bioseq/blast"
	"github.com/bioseqkit/bioseq/server"
	"github.com/bioseqkit/bioseq/toolkit"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("bioseqd")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("bioseqd", "bioinformatics toolkit MCP server").Version(version)

	// remote BLAST search
	blastURL   = app.Flag("blast-url", "BLAST endpoint URL").Default(blast.DefaultBaseURL).String()
	blastCache = app.Flag("blast-cache", "cache BLAST results in a bolt database file").String()
	blastTTL   = app.Flag("blast-cache-ttl", "BLAST cache entry lifetime (0 keeps entries forever)").Default("168h").Duration()
	blastPoll  = app.Flag("blast-poll", "interval between BLAST status polls").Default("10s").Duration()
	blastWait  = app.Flag("blast-timeout", "maximum time to wait for one BLAST search").Default("10m").Duration()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		// stdout carries the protocol, logs must go to stderr
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "bioseqd")
	logging.SetLevel(level, "server")
	logging.SetLevel(level, "blast")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	blastOptions := []blast.Option{
		blast.WithBaseURL(*blastURL),
		blast.WithPollInterval(*blastPoll),
		blast.WithDeadline(*blastWait),
	}

	if *blastCache != "" {
		db, err := bolt.Open(*blastCache, 0666, &bolt.Options{Timeout: time.Second})
		if err != nil {
			log.Fatal("Error opening BLAST cache database:", err)
		}
		defer db.Close()
		log.Infof("Caching BLAST results in %s (ttl=%v)", *blastCache, *blastTTL)
		blastOptions = append(blastOptions, blast.WithCache(blast.NewCache(db, *blastTTL)))
	}

	kit := toolkit.New(blast.NewClient(blastOptions...))

	if err := server.Serve(server.New(kit, version)); err != nil {
		log.Fatal("Server error:", err)
	}
}
