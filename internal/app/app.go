package app

import (
	"net/http"
	"os"

	"gorm.io/gorm"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/adapters/httpserver"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/adapters/repo/postgres"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/adapters/whatsapp"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/catalog"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/domain"
)

// App wires the loaded catalogue and the optional cart database into the
// HTTP surface.
type App struct {
	Index      *catalog.Index
	DB         *gorm.DB
	Carts      domain.CartStore
	WhatsApp   *whatsapp.Gateway
	PDFDir     string
	PreviewDir string
}

// NewApp accepts the catalogue index (nil when the startup load failed) and
// an optional database handle for the cart store.
func NewApp(ix *catalog.Index, db *gorm.DB) *App {
	a := &App{Index: ix, DB: db}
	if db != nil {
		a.Carts = postgres.NewCartRepo(db)
	}
	a.WhatsApp = whatsapp.NewGateway(os.Getenv("WA_PHONE"))
	a.PDFDir = envOr("PDF_DIR", "pdf")
	a.PreviewDir = envOr("PREVIEW_DIR", "previews")
	return a
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(httpserver.Config{
		Index:      a.Index,
		Carts:      a.Carts,
		WhatsApp:   a.WhatsApp,
		PDFDir:     a.PDFDir,
		PreviewDir: a.PreviewDir,
	})
}

// Migrate creates the cart table. Carts are the only persisted state; orders
// never touch the database.
func (a *App) Migrate() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.AutoMigrate(&domain.CartItem{})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
