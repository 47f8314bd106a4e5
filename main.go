package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"echo-journal/config"
	"echo-journal/database"
	"echo-journal/logger"
	"echo-journal/web"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
)

func main() {
	_ = godotenv.Load()
	runWebServer()
}

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close db err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}
