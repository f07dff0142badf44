package main // entry point for the club management API server

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/club-manager/internal/config"
	"github.com/iliyamo/club-manager/internal/middleware"
	"github.com/iliyamo/club-manager/internal/router"
	"github.com/iliyamo/club-manager/internal/store"
)

func main() {
	// A missing .env file is fine; config falls back to defaults.
	_ = godotenv.Load()
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	st, err := store.Open(cfg.DataFile, cfg.BcryptCost)
	if err != nil {
		logrus.Fatalf("open store: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger())
	router.Register(e, cfg, st)

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env, "data_file": cfg.DataFile}).
		Info("club management API listening")
	if err := e.Start(addr); err != nil {
		logrus.Fatal(err)
	}
}
