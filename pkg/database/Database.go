package database

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"time"

	_ "github.com/glebarez/sqlite"
	"github.com/rfberaldo/sqlz"
	"github.com/rfberaldo/sqlz/binds"
)

/*
Connect opens a sqlite database with sqlz.
*/
func Connect(dsn string) (*sqlz.DB, error) {
	var (
		err error
		db  *sqlz.DB
	)

	binds.Register("sqlite", binds.BindByDriver("sqlite3"))

	if db, err = sqlz.Connect("sqlite", dsn); err != nil {
		return nil, fmt.Errorf("error connecting to database '%s': %w", dsn, err)
	}

	return db, nil
}

/*
Migrate runs every script in dir whose name starts with "commit", in name
order. Errors from re-running an already applied script are ignored.
*/
func Migrate(db *sqlz.DB, migrations fs.FS, dir string) error {
	var (
		err  error
		dirs []fs.DirEntry
		b    []byte
	)

	if dirs, err = fs.ReadDir(migrations, dir); err != nil {
		return fmt.Errorf("error reading migrations directory '%s': %w", dir, err)
	}

	for _, d := range dirs {
		if d.IsDir() || !strings.HasPrefix(d.Name(), "commit") {
			continue
		}

		if b, err = fs.ReadFile(migrations, path.Join(dir, d.Name())); err != nil {
			return fmt.Errorf("error reading migration '%s': %w", d.Name(), err)
		}

		if err = runSqlScript(db, b); err != nil {
			if !isIgnorableError(err) {
				return fmt.Errorf("error running migration '%s': %w", d.Name(), err)
			}
		}

		slog.Debug("applied migration", "name", d.Name())
	}

	return nil
}

func runSqlScript(db *sqlz.DB, script []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	_, err := db.Exec(ctx, string(script))
	return err
}

func isIgnorableError(err error) bool {
	if strings.Contains(err.Error(), "duplicate column") {
		return true
	}

	if strings.Contains(err.Error(), "already exists") {
		return true
	}

	return false
}
