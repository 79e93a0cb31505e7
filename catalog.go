package gradient

import (
	"database/sql"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog is a sqlite database recording every image generated.
type Catalog struct {
	db *sql.DB
}

// Entry is a single catalogued image.
type Entry struct {
	Path     string
	Width    int
	Height   int
	BottomUp bool
	Size     int64
	CRC      string
	SHA1     string
}

// NewCatalog opens or creates the catalog database at file.
func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS image (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, bottom_up INTEGER NOT NULL, size INTEGER NOT NULL, crc TEXT NOT NULL, sha1 TEXT NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record stores the result of a completed run, replacing any earlier entry
// for the same path.
func (c *Catalog) Record(path string, o Options, res *Result) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if _, err := c.db.Exec("INSERT OR REPLACE INTO image (path, width, height, bottom_up, size, crc, sha1) VALUES (?, ?, ?, ?, ?, ?, ?)", abs, o.Width, o.Height, o.Order == BottomUp, res.Size, res.CRC, res.SHA1); err != nil {
		return err
	}
	return nil
}

// Images returns every catalogued image ordered by path.
func (c *Catalog) Images() ([]Entry, error) {
	rows, err := c.db.Query("SELECT path, width, height, bottom_up, size, crc, sha1 FROM image ORDER BY path")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Path, &e.Width, &e.Height, &e.BottomUp, &e.Size, &e.CRC, &e.SHA1); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// FindBySHA1 returns the entry whose contents have the given SHA-1, or nil if
// there is no such entry.
func (c *Catalog) FindBySHA1(sha string) (*Entry, error) {
	var e Entry
	switch err := c.db.QueryRow("SELECT path, width, height, bottom_up, size, crc, sha1 FROM image WHERE sha1 = ? ORDER BY path LIMIT 1", sha).Scan(&e.Path, &e.Width, &e.Height, &e.BottomUp, &e.Size, &e.CRC, &e.SHA1); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &e, nil
	default:
		return nil, err
	}
}
