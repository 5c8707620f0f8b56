package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/lumen-home/light/server"
	"github.com/lumen-home/light/settings"
)

func main() {
	options := &settings.StartUpOptions{}
	_, err := flags.Parse(options)
	if err != nil {
		panic(err)
	}

	s := settings.Load(options)
	s.SystemLogger().Info("Starting lumen lights service")

	srv, err := server.NewServer(s)
	if err != nil {
		s.SystemLogger().Fatal("Failed to start lights service", err)
	}

	srv.Start()
}
