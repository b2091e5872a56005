package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/nhdewitt/jwp-dispatch/internal/app"
	"github.com/nhdewitt/jwp-dispatch/internal/config"
	"github.com/nhdewitt/jwp-dispatch/internal/dispatch"
	"github.com/nhdewitt/jwp-dispatch/internal/frontend"
	"github.com/nhdewitt/jwp-dispatch/internal/server"
	"github.com/nhdewitt/jwp-dispatch/internal/session"
	"github.com/nhdewitt/jwp-dispatch/internal/static"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the server (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	users := app.NewUsers(app.User{Account: "gugu", Password: "password", Email: "hkkang@woowahan.com"})
	sessions := session.NewStore()
	table, err := buildTable(cfg, users, sessions)
	if err != nil {
		log.Fatalf("Error registering handlers: %v", err)
	}

	fe := frontend.New(dispatch.New(table), static.NewDir(cfg.StaticDir), sessions)
	srv, err := server.Serve(cfg.Server(), fe.Handle, fe.HandleError)
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
	defer srv.Close()
	color.New(color.FgGreen, color.Bold).Printf("Server started on port %d (%d routes, static %s)\n", cfg.Port, table.Len(), cfg.StaticDir)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Printf("Server gracefully stopped (%d sessions created)", sessions.Created())
	return nil
}
