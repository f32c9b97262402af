/*

Goflip uses Bayes rule to compare two models of a binomial success
rate from a series of lizard flips: a "null" model where the
probability of heads is fixed, and an alternative model where the
probability of heads follows a beta prior.

The basic usage of goflip looks like this:

	goflip -n 100 -k 63

, this will compare the models for 100 flips with 63 heads, a fixed
null probability of 0.5 and a uniform prior.

You can change the null probability and the prior:

	goflip -n 100 -k 63 -p 0.5 -a 2 -b 5

To see all the options run:

	goflip --help

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/Davydov/goflip/runlog"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("goflip")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("goflip", "Bayesian comparison of binomial success rate models").Version(version)

	// model parameters
	nFlips = app.Flag("number-of-flips", "number of lizard flips").
		Default("100").Short('n').Int()
	nHeads = app.Flag("number-of-heads", "number of lizards that land heads up").
		Default("63").Short('k').Int()
	pHeads = app.Flag("probability-of-heads", "probability of any lizard landing heads up under the 'null' model").
		Default("0.5").Short('p').Float64()
	betaA = app.Flag("beta-prior-alpha", "value of the alpha parameter of the beta prior on the probability of heads").
		Default("1").Short('a').Float64()
	betaB = app.Flag("beta-prior-beta", "value of the beta parameter of the beta prior on the probability of heads").
		Default("1").Short('b').Float64()

	// input/output
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")
	jsonF = app.Flag("json", "write json output to a file").String()
	dbF   = app.Flag("db", "save run results to a database file").String()

	// technical
	selfTest = app.Flag("selftest", "run the embedded example checks and exit").Bool()
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
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLevel(level, "goflip")
	logging.SetLevel(level, "runlog")

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	if *selfTest {
		os.Exit(runSelfTest())
	}

	startTime := time.Now()

	s, err := newSettings()
	if err != nil {
		app.FatalUsage("%v\n", err)
	}

	m, err := s.createModel()
	if err != nil {
		log.Fatal(err)
	}

	var db *bolt.DB
	if *dbF != "" {
		db, err = bolt.Open(*dbF, 0644, nil)
		if err != nil {
			log.Fatal("Error opening database file:", err)
		}
		defer db.Close()
	}

	rio, err := runlog.NewRunIO(db, s.parameters())
	if err != nil {
		log.Fatal(err)
	}
	if _, err := rio.Previous(); err != nil {
		log.Error("Error reading the run database:", err)
	}

	summary := hypTest(m)
	summary.Version = version
	summary.CommandLine = os.Args
	summary.Parameters = s.parameters()
	summary.Time = time.Since(startTime).Seconds()

	printReport(os.Stdout, summary)

	err = rio.Save(&runlog.Record{
		Time:       startTime,
		Parameters: s.parameters(),
		Results:    summary.results(),
	})
	if err != nil {
		log.Error("Error saving run record:", err)
	}

	// output summary in json format
	if *jsonF != "" {
		j, err := json.Marshal(summary)
		if err != nil {
			log.Error(err)
		} else {
			log.Debug(string(j))
			f, err := os.Create(*jsonF)
			if err != nil {
				log.Error("Error creating json output file:", err)
			} else {
				f.Write(j)
				f.Close()
			}
		}
	}
}
