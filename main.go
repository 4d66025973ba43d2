package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"schedsim/api"
	"schedsim/config"
	"schedsim/internal/generator"
	"schedsim/internal/menu"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ./config.yaml)")
	serve := flag.Bool("serve", false, "serve the scheduling api instead of the interactive menu")
	flag.Parse()

	cfg, err := config.LoadSchedulerConfig(*configPath)
	if err != nil {
		log.Fatalln(err)
	}

	if !*serve {
		menu.New(os.Stdin, os.Stdout, generator.New(cfg.Generator, cfg.Seed)).Run()
		return
	}

	app := fiber.New()
	api.RegisterRoutes(app, api.NewSchedulerHandlerImpl(cfg))
	log.Fatalln(app.Listen(":" + strconv.Itoa(cfg.Port)))
}
