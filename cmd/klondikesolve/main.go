// Command klondikesolve runs the batch/scripted solver control loop over
// stdin/stdout. Grounded on cmd/chessplay-uci/main.go: flag parsing,
// optional CPU profiling, constructing the domain object, and handing off
// to a protocol loop.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"

	"github.com/arjunmenon/klondikesolve/internal/cli"
	"github.com/arjunmenon/klondikesolve/internal/presolved"
	"github.com/arjunmenon/klondikesolve/internal/store"
)

var (
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
	persistPath = flag.String("store", "", "directory for the persistent solved-deal cache (default: platform data dir; use -nostore to disable)")
	noStore     = flag.Bool("nostore", false, "disable the persistent solved-deal cache entirely")
	bookPath    = flag.String("book", "", "known-deal shortcut cache file to seed fringe ordering from (optional)")
)

func main() {
	flag.Parse()

	if profilePath := *cpuprofile; profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	protocol := cli.New(os.Stdout)

	if *bookPath != "" {
		book, err := presolved.Load(*bookPath)
		if err != nil {
			log.Printf("warning: known-deal cache not loaded: %v", err)
		} else {
			protocol.AttachBook(book)
		}
	}

	if !*noStore {
		db, err := openStore()
		if err != nil {
			log.Printf("warning: solved-deal cache not available: %v", err)
		} else {
			defer db.Close()
			protocol.AttachStore(db)
		}
	}

	protocol.Run(os.Stdin)
}

func openStore() (*store.Store, error) {
	if *persistPath != "" {
		return store.OpenAt(*persistPath)
	}
	return store.Open()
}
