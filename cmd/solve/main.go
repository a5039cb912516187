package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/rectpack-server/internal/puzzle"
	"github.com/vancomm/rectpack-server/internal/rectpack"
)

var (
	log = logrus.New()

	definitionPath string
	verbose        bool
)

func init() {
	const usage = "puzzle definition file (JSON); built-in 7x7 instance when omitted"
	flag.StringVar(&definitionPath, "definition", "", usage)
	flag.StringVar(&definitionPath, "d", "", usage+" (shorthand)")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func main() {
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
		rectpack.Log.SetLevel(logrus.DebugLevel)
	}

	def := puzzle.Default()
	if definitionPath != "" {
		var err error
		def, err = puzzle.Load(definitionPath)
		if err != nil {
			log.Fatalf("unable to read definition %s: %s", definitionPath, err.Error())
		}
	}
	if err := def.Validate(); err != nil {
		log.Fatal("invalid definition: ", err)
	}

	board, pool, err := def.Build()
	if err != nil {
		log.Fatal("unable to build initial state: ", err)
	}

	var m rectpack.Metrics
	solved, ok := rectpack.Solve(board, pool, &m)
	log.WithFields(m.Fields()).Debug("search metrics")

	if !ok {
		fmt.Println("no solution found")
		os.Exit(1)
	}
	fmt.Print(solved)
}
