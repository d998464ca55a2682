package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/silverpath/funnel-api/internal/config"
)

const usage = "usage: migrate [up|up-to VERSION|down|reset|status|version|create NAME]"

// command is one goose operation. arg is the optional positional argument.
type command struct {
	needsArg string
	offline  bool
	run      func(db *sql.DB, dir, arg string) (string, error)
}

var commands = map[string]command{
	"up": {run: func(db *sql.DB, dir, _ string) (string, error) {
		return "Migrations applied", goose.Up(db, dir)
	}},
	"up-to": {needsArg: "a target version", run: func(db *sql.DB, dir, arg string) (string, error) {
		version, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid version %q: %w", arg, err)
		}
		return fmt.Sprintf("Migrated up to version %d", version), goose.UpTo(db, dir, version)
	}},
	"down": {run: func(db *sql.DB, dir, _ string) (string, error) {
		return "Rolled back one migration", goose.Down(db, dir)
	}},
	"reset": {run: func(db *sql.DB, dir, _ string) (string, error) {
		return "Rolled back all migrations", goose.Reset(db, dir)
	}},
	"status": {run: func(db *sql.DB, dir, _ string) (string, error) {
		return "", goose.Status(db, dir)
	}},
	"version": {run: func(db *sql.DB, dir, _ string) (string, error) {
		return "", goose.Version(db, dir)
	}},
	// create only writes a file, so it runs without a database
	"create": {needsArg: "a migration name", offline: true, run: func(db *sql.DB, dir, arg string) (string, error) {
		return "Created migration " + arg, goose.Create(db, dir, arg, "sql")
	}},
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs resolves the command and its argument without touching the database
func parseArgs(args []string) (string, command, string, error) {
	if len(args) == 0 {
		return "", command{}, "", errors.New(usage)
	}
	name := args[0]
	cmd, ok := commands[name]
	if !ok {
		return "", command{}, "", fmt.Errorf("unknown command %q\n%s", name, usage)
	}

	var arg string
	if len(args) > 1 {
		arg = args[1]
	}
	if cmd.needsArg != "" && arg == "" {
		return "", command{}, "", fmt.Errorf("%s requires %s", name, cmd.needsArg)
	}
	return name, cmd, arg, nil
}

func migrationsDir() string {
	if dir := os.Getenv("MIGRATIONS_DIR"); dir != "" {
		return dir
	}
	return "./migrations"
}

func run(args []string) error {
	name, cmd, arg, err := parseArgs(args)
	if err != nil {
		return err
	}

	var db *sql.DB
	if !cmd.offline {
		if db, err = open(); err != nil {
			return err
		}
		defer db.Close()
	}

	msg, err := cmd.run(db, migrationsDir(), arg)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if msg != "" {
		fmt.Println(msg)
	}
	return nil
}

func open() (*sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return nil, fmt.Errorf("migrations target postgres, configured driver is %q", cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set dialect: %w", err)
	}
	return db, nil
}
