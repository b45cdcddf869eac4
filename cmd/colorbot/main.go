package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/diamondburned/colorbot"
	"github.com/diamondburned/colorbot/internal/config"
	"github.com/dustin/go-humanize"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("Failed to load config:", err)
	}

	b, err := colorbot.New(cfg)
	if err != nil {
		log.Fatalln("Failed to create bot:", err)
	}

	if err := b.Open(); err != nil {
		log.Fatalln("Failed to connect:", err)
	}

	log.Println("Minimum contrast is", humanize.FormatFloat("#.##", cfg.MinContrast))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	if err := b.Close(); err != nil {
		log.Println("Failed to close:", err)
	}
}
