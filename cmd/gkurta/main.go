package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/app"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/catalog"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	index := loadCatalog()
	if index != nil {
		zlog.Info().Int("products", index.Len()).Msg("catalog loaded")
	}

	var db *gorm.DB
	if dsn := cartDSN(); dsn != "" {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			zlog.Warn().Err(err).Msg("cart database unavailable, carts disabled")
			db = nil
		}
	}

	application := app.NewApp(index, db)
	if err := application.Migrate(); err != nil {
		zlog.Fatal().Err(err).Msg("failed to migrate cart store")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		zlog.Fatal().Err(err).Str("port", port).Msg("listen failed")
	}

	server := &http.Server{Handler: application.HTTPHandler()}
	go func() {
		zlog.Info().Str("port", port).Msg("serving")
		if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
			zlog.Error().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
}

// loadCatalog fetches the catalogue document once. On failure it returns nil
// and the surface serves its terminal error state; there is no retry loop.
func loadCatalog() *catalog.Index {
	loader := catalog.NewLoader()
	if url := os.Getenv("CATALOG_URL"); url != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		ix, err := loader.FetchURL(ctx, url)
		if err != nil {
			zlog.Error().Err(err).Str("url", url).Msg("catalog fetch failed")
			return nil
		}
		return ix
	}
	file := os.Getenv("CATALOG_FILE")
	if file == "" {
		file = "product.json"
	}
	ix, err := loader.LoadFile(file)
	if err != nil {
		zlog.Error().Err(err).Str("file", file).Msg("catalog load failed")
		return nil
	}
	return ix
}

func cartDSN() string {
	if dsn := strings.TrimSpace(os.Getenv("DB_DSN")); dsn != "" {
		return dsn
	}
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}
	user := os.Getenv("DB_USER")
	if user == "" {
		user = "postgres"
	}
	pass := os.Getenv("DB_PASSWORD")
	if pass == "" {
		pass = "postgres"
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "gkurta"
	}
	ssl := os.Getenv("DB_SSLMODE")
	if ssl == "" {
		ssl = "disable"
	}
	return "host=" + host + " user=" + user + " password=" + pass + " dbname=" + name + " port=" + port + " sslmode=" + ssl
}
