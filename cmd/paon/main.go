// Command paon relays stdin lines to channel observers.
//
// Each input line is one of:
//
//	<channel> <message>   publish message on channel
//	+<channel>            attach a logging observer to channel
//	-<channel>            drop every observer of channel
package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("could not load relay config: %s", err.Error())
	}

	lgr, err := NewLogger(os.Stdout, os.Args)
	if err != nil {
		log.Fatalf("could not initialise logger: %s", err.Error())
	}

	relay := NewRelay(cfg, lgr)
	if err := relay.Run(os.Stdin); err != nil {
		lgr.Error().Err(err).Msg("Relay stopped")
		os.Exit(1)
	}
}
