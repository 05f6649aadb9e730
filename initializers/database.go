package initializers

import (
	"database/sql"
	"log"
	"os"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/lib/pq"
)

// DB is the shared goqu handle every controller queries through. Tests swap
// it for a sqlmock-backed instance.
var DB *goqu.Database

// ConnectDB opens the Postgres connection named by DB_URL and verifies it.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal(err)
	}

	err = db.Ping()
	if err != nil {
		log.Fatal(err)
	}

	DB = goqu.New("postgres", db)
	log.Println("Connected to database")
}
