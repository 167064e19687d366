package main

import (
	"flag"
	"log"

	"floodloss/cmd"
)

func main() {
	configPath := flag.String("config", "", "path to the TOML config")
	port := flag.Int("port", 3009, "port to listen on")
	flag.Parse()

	deps, err := cmd.InitializeDependencies(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	err = deps.ApiHandler.StartApi(*port)
	if err != nil {
		deps.Logger.Fatalw("api stopped", "error", err.Error())
	}
}
