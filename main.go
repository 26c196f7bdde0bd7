package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

// Build-time variables injected via ldflags.
var (
	Version        = "v0.0.0"
	CommitHash     = "dev"
	BuildTimestamp = "1970-01-01T00:00:00Z"
)

// iconPath is where the generated icon lands, relative to the working
// directory. The directory must already exist.
const iconPath = "icons/icon.ico"

func versionString() string {
	return fmt.Sprintf("mkicon %s-%s (built %s)", Version, CommitHash, BuildTimestamp)
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[mkicon] ")

	showVersion := flag.Bool("version", false, "show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(versionString())
		return
	}

	data := buildIconBytes()
	if err := writeIconFile(data, iconPath); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
	fmt.Printf("Created %s (%d bytes)\n", iconPath, len(data))
}
