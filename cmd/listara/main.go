package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/muesli/coral"
	"github.com/neeleshs/listara/internal/database"
	"github.com/neeleshs/listara/internal/server"
	"github.com/neeleshs/listara/pkg/clock"
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

const dbname = "listara.db"

// Lists that have not been touched for this long are swept away.
const defaultRetentionTTL = 30 * 24 * time.Hour

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	cfg string
)

func main() {
	c := &coral.Command{
		Use:     "listara",
		Short:   "Multi-list todo server",
		Version: fmt.Sprintf("%s - build %.7s @ %s - %s", version, revision, date, runtime.Version()),
		Args:    coral.ExactArgs(0),
	}
	initCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(initCmd)

	reindexCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(reindexCmd)

	serverCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(serverCmd)

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func dbnameWithPath(path string) string {
	if len(path) == 0 {
		return dbname
	}
	return filepath.Join(path, dbname)
}

var (
	initCmd = &coral.Command{
		Use:   "init",
		Short: "Init the database",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf := koanf.New(".")
			if err := konf.Load(file.Provider(cfg), yaml.Parser()); err != nil {
				return err
			}

			return database.StormInit(dbnameWithPath(konf.String("database_path")))
		},
	}

	//
	//
	reindexCmd = &coral.Command{
		Use:   "reindex",
		Short: "Reindex the database",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf := koanf.New(".")
			if err := konf.Load(file.Provider(cfg), yaml.Parser()); err != nil {
				return err
			}

			return database.StormReIndex(dbnameWithPath(konf.String("database_path")))
		},
	}

	//
	//
	serverCmd = &coral.Command{
		Use:   "server",
		Short: "Start server",
		Args:  coral.ExactArgs(0),
		RunE: func(_ *coral.Command, _ []string) error {
			konf := koanf.New(".")
			if err := konf.Load(file.Provider(cfg), yaml.Parser()); err != nil {
				return err
			}

			db, err := database.StormOpen(dbnameWithPath(konf.String("database_path")), clock.New())
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()

			retention := konf.Duration("retention_ttl")
			if retention == 0 {
				retention = defaultRetentionTTL
			}

			ctrl := server.Controller{
				Version:      version,
				Database:     db,
				Clock:        clock.New(),
				RetentionTTL: retention,
				DisableCSRF:  konf.Bool("no_csrf"),
			}

			if filename := konf.String("access_log.file"); filename != "" {
				rotate := &lumberjack.Logger{
					Filename:   filename,
					MaxSize:    10, // megabytes
					MaxBackups: 5,
					MaxAge:     30, // days
				}
				if n := konf.Int("access_log.max_size"); n > 0 {
					rotate.MaxSize = n
				}
				if n := konf.Int("access_log.max_backups"); n > 0 {
					rotate.MaxBackups = n
				}
				if n := konf.Int("access_log.max_age"); n > 0 {
					rotate.MaxAge = n
				}
				ctrl.AccessLogOutput = rotate
			}

			engine := server.EchoEngine(ctrl)
			server.PrintRoutes(engine)

			address := konf.String("address")
			message := "could not run server"
			log.Printf("Server listening on %s\n", address)
			parts := strings.Split(address, ":")
			if len(parts) == 2 && parts[0] == "unix" {
				socketFile := parts[1]
				if _, err := os.Stat(socketFile); err == nil {
					log.Printf("Removing existing %s\n", socketFile)
					os.Remove(socketFile)
				}
				defer os.Remove(socketFile)
				listener, err := net.Listen(parts[0], socketFile)
				if err != nil {
					return err
				}
				return errors.Wrap(engine.Server.Serve(listener), message)
			}
			return errors.Wrap(engine.Start(address), message)
		},
	}
)
