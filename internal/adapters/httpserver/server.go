// Package httpserver exposes the catalog and order pipeline as a JSON
// surface any UI binding can drive. All business rules live below it; the
// handlers only translate HTTP into state transitions and errors into
// status codes.
package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/adapters/export"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/adapters/whatsapp"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/catalog"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/domain"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/selection"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/usecase"
)

type Config struct {
	// Index is nil when the startup catalogue load failed; the surface then
	// serves its terminal error state (503 on every catalogue route).
	Index      *catalog.Index
	Carts      domain.CartStore // nil disables the cart feature
	WhatsApp   *whatsapp.Gateway
	PDFDir     string
	PreviewDir string
}

type Server struct {
	mux      *http.ServeMux
	index    *catalog.Index
	carts    domain.CartStore
	wa       *whatsapp.Gateway
	orders   *usecase.OrderUC
	sessions *sessionStore
}

func New(cfg Config) http.Handler {
	s := &Server{
		mux:    http.NewServeMux(),
		index:  cfg.Index,
		carts:  cfg.Carts,
		wa:     cfg.WhatsApp,
		orders: &usecase.OrderUC{},
	}
	if s.wa == nil {
		s.wa = whatsapp.NewGateway("")
	}
	if s.index != nil {
		catalogProductsGauge.Set(float64(s.index.Len()))
		s.sessions = newSessionStore(s.index)
	}
	s.routes(cfg)
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
		Metrics,
	)
}

func (s *Server) routes(cfg Config) {
	if cfg.PDFDir != "" {
		s.mux.Handle("/pdf/", http.StripPrefix("/pdf/", http.FileServer(http.Dir(cfg.PDFDir))))
	}
	if cfg.PreviewDir != "" {
		s.mux.Handle("/previews/", http.StripPrefix("/previews/", http.FileServer(http.Dir(cfg.PreviewDir))))
	}

	s.mux.Handle("/metrics", promhttp.Handler())
	s.mux.HandleFunc("/healthz", s.handleHealth)

	s.mux.HandleFunc("/api/products", s.apiProducts)
	s.mux.HandleFunc("/api/products/", s.apiProductByID)
	s.mux.HandleFunc("/api/types", s.apiTypes)
	s.mux.HandleFunc("/api/colors", s.apiColors)
	s.mux.HandleFunc("/api/sizes", s.apiSizes)

	s.mux.HandleFunc("/api/selection", s.apiSelection)
	s.mux.HandleFunc("/api/selection/type", s.apiSelectType)
	s.mux.HandleFunc("/api/selection/color", s.apiSelectColor)
	s.mux.HandleFunc("/api/selection/quantity", s.apiSetQuantity)

	s.mux.HandleFunc("/api/order/summary", s.apiOrderSummary)
	s.mux.HandleFunc("/api/order/message", s.apiOrderMessage)

	s.mux.HandleFunc("/api/cart", s.apiCart)

	s.mux.HandleFunc("/admin/export/xlsx", s.handleExportXLSX)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"catalog": s.index != nil,
	})
}

// catalogReady guards every route that needs the index. While the catalogue
// is absent the page load is in its terminal error state: no retry, reload
// only.
func (s *Server) catalogReady(w http.ResponseWriter) bool {
	if s.index == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "catalog unavailable"})
		return false
	}
	return true
}

type productCard struct {
	ID         string            `json:"id,omitempty"`
	Type       string            `json:"type"`
	Color      string            `json:"color"`
	Number     string            `json:"number"`
	Page       int               `json:"page"`
	PDFURL     string            `json:"pdfUrl,omitempty"`
	PreviewURL string            `json:"previewUrl"`
	Categories []domain.Category `json:"categories"`
}

func (s *Server) card(p *domain.Product, r domain.Resolved) productCard {
	c := productCard{
		ID:         p.ID,
		Type:       p.Type,
		Color:      r.Color,
		Number:     r.Number,
		Page:       r.Page,
		PreviewURL: fmt.Sprintf("/previews/%s-page-%d.jpg", strings.ToLower(p.Type), r.Page),
		Categories: catalog.Categories(r),
	}
	if r.PDFReference != "" {
		c.PDFURL = fmt.Sprintf("/pdf/%s#page=%d", r.PDFReference, r.Page)
	}
	return c
}

func (s *Server) apiProducts(w http.ResponseWriter, r *http.Request) {
	if !s.catalogReady(w) {
		return
	}
	q := r.URL.Query().Get("q")
	typ := r.URL.Query().Get("type")
	cards := []productCard{}
	for _, p := range s.index.Search(q, typ) {
		if p.HasVariants() {
			for _, v := range p.Variants {
				if res, ok := s.index.Resolve(p.Type, v.Color); ok {
					cards = append(cards, s.card(p, res))
				}
			}
			continue
		}
		if res, ok := s.index.Resolve(p.Type, p.Color); ok {
			cards = append(cards, s.card(p, res))
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": cards, "total": len(cards)})
}

func (s *Server) apiProductByID(w http.ResponseWriter, r *http.Request) {
	if !s.catalogReady(w) {
		return
	}
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/products/"), "/")
	parts := strings.Split(rest, "/")
	if len(parts) == 0 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	p, ok := s.index.ByID(parts[0])
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	if len(parts) == 1 {
		writeJSON(w, http.StatusOK, p)
		return
	}
	if len(parts) == 2 && parts[1] == "order-template" {
		color := r.URL.Query().Get("color")
		if color == "" {
			if p.HasVariants() {
				color = p.Variants[0].Color
			} else {
				color = p.Color
			}
		}
		res, ok := s.index.Resolve(p.Type, color)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "color not found"})
			return
		}
		text := s.orders.OrderTemplate(res)
		writeJSON(w, http.StatusOK, map[string]string{
			"message": text,
			"link":    s.wa.Link(text),
		})
		return
	}
	http.NotFound(w, r)
}

func (s *Server) apiTypes(w http.ResponseWriter, r *http.Request) {
	if !s.catalogReady(w) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"types": s.index.Types()})
}

func (s *Server) apiColors(w http.ResponseWriter, r *http.Request) {
	if !s.catalogReady(w) {
		return
	}
	typ := r.URL.Query().Get("type")
	if typ == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "type is required"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"colors": s.index.ColorsForType(typ)})
}

func (s *Server) apiSizes(w http.ResponseWriter, r *http.Request) {
	if !s.catalogReady(w) {
		return
	}
	qv := r.URL.Query()
	cat := domain.Category(qv.Get("category"))
	if !cat.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "category must be Mens, Ladies or Kids"})
		return
	}
	res, ok := s.index.Resolve(qv.Get("type"), qv.Get("color"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	rows := catalog.SizesFor(res, cat)
	if rows == nil {
		rows = []domain.SizeRow{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"sizes": rows})
}

type quantityView struct {
	Category domain.Category `json:"category"`
	Size     string          `json:"size"`
	Quantity int             `json:"quantity"`
}

type selectionView struct {
	Type       string         `json:"type"`
	Color      string         `json:"color"`
	Product    *productCard   `json:"product,omitempty"`
	Quantities []quantityView `json:"quantities"`
}

func (s *Server) selectionView(st *selection.State) selectionView {
	typ, color := st.Selected()
	view := selectionView{Type: typ, Color: color, Quantities: []quantityView{}}
	res, ok := st.Current()
	if !ok {
		return view
	}
	card := s.card(res.Product, res)
	view.Product = &card
	for _, cat := range domain.CategoryOrder {
		for _, row := range catalog.SizesFor(res, cat) {
			if qty := st.Quantity(cat, row.Size); qty > 0 {
				view.Quantities = append(view.Quantities, quantityView{Category: cat, Size: row.Size, Quantity: qty})
			}
		}
	}
	return view
}

func (s *Server) apiSelection(w http.ResponseWriter, r *http.Request) {
	if !s.catalogReady(w) {
		return
	}
	s.sessions.with(w, r, func(st *selection.State) {
		writeJSON(w, http.StatusOK, s.selectionView(st))
	})
}

func (s *Server) apiSelectType(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	if !s.catalogReady(w) {
		return
	}
	s.sessions.with(w, r, func(st *selection.State) {
		st.SetType(r.FormValue("type"))
		writeJSON(w, http.StatusOK, s.selectionView(st))
	})
}

func (s *Server) apiSelectColor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	if !s.catalogReady(w) {
		return
	}
	s.sessions.with(w, r, func(st *selection.State) {
		st.SetColor(r.FormValue("color"))
		writeJSON(w, http.StatusOK, s.selectionView(st))
	})
}

func (s *Server) apiSetQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	if !s.catalogReady(w) {
		return
	}
	s.sessions.with(w, r, func(st *selection.State) {
		cat := domain.Category(r.FormValue("category"))
		if err := st.SetQuantityRaw(cat, r.FormValue("size"), r.FormValue("qty")); err != nil {
			s.httpError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, s.selectionView(st))
	})
}

func (s *Server) apiOrderSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodGet {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	if !s.catalogReady(w) {
		return
	}
	s.sessions.with(w, r, func(st *selection.State) {
		summary, err := s.orders.Build(st)
		if err != nil {
			s.httpError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"summary": summary,
			"text":    strings.Join(summary.TextLines(), "\n"),
		})
	})
}

type messageRequest struct {
	domain.CustomerFields
	To string `json:"to"`
}

func (s *Server) apiOrderMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method", http.StatusMethodNotAllowed)
		return
	}
	if !s.catalogReady(w) {
		return
	}
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	s.sessions.with(w, r, func(st *selection.State) {
		summary, err := s.orders.Build(st)
		if err != nil {
			s.httpError(w, err)
			return
		}
		msg, err := s.orders.Compose(summary, req.CustomerFields, time.Now())
		if err != nil {
			s.httpError(w, err)
			return
		}
		orderMessagesTotal.Inc()
		writeJSON(w, http.StatusOK, map[string]string{
			"message": msg,
			"link":    s.wa.LinkTo(msg, req.To),
		})
	})
}

func (s *Server) apiCart(w http.ResponseWriter, r *http.Request) {
	if !s.catalogReady(w) {
		return
	}
	if s.carts == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "cart unavailable"})
		return
	}
	switch r.Method {
	case http.MethodGet:
		id, ok := cartID(w, r, false)
		if !ok {
			writeJSON(w, http.StatusOK, cartView(nil))
			return
		}
		items, err := s.carts.Load(r.Context(), id)
		if err != nil {
			log.Error().Err(err).Msg("cart load")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "cart load failed"})
			return
		}
		writeJSON(w, http.StatusOK, cartView(items))
	case http.MethodPost:
		s.addSummaryToCart(w, r)
	case http.MethodDelete:
		id, ok := cartID(w, r, false)
		if ok {
			if err := s.carts.Clear(r.Context(), id); err != nil {
				log.Error().Err(err).Msg("cart clear")
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "cart clear failed"})
				return
			}
		}
		writeJSON(w, http.StatusOK, cartView(nil))
	default:
		http.Error(w, "method", http.StatusMethodNotAllowed)
	}
}

// addSummaryToCart folds the session's current order summary into the
// persisted cart, merging lines that target the same colorway and size.
func (s *Server) addSummaryToCart(w http.ResponseWriter, r *http.Request) {
	s.sessions.with(w, r, func(st *selection.State) {
		summary, err := s.orders.Build(st)
		if err != nil {
			s.httpError(w, err)
			return
		}
		id, _ := cartID(w, r, true)
		items, err := s.carts.Load(r.Context(), id)
		if err != nil {
			log.Error().Err(err).Msg("cart load")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "cart load failed"})
			return
		}
		items = mergeSummary(items, summary)
		if err := s.carts.Save(r.Context(), id, items); err != nil {
			log.Error().Err(err).Msg("cart save")
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "cart save failed"})
			return
		}
		writeJSON(w, http.StatusOK, cartView(items))
	})
}

func mergeSummary(items []domain.CartItem, summary *domain.OrderSummary) []domain.CartItem {
	pos := map[string]int{}
	for i, it := range items {
		pos[cartKey(it.Type, it.Color, it.Category, it.Size)] = i
	}
	for _, block := range summary.Blocks {
		for _, line := range block.Items {
			key := cartKey(summary.Product.Type, summary.Product.Color, line.Category, line.Size)
			if i, ok := pos[key]; ok {
				items[i].Quantity += line.Quantity
				continue
			}
			pos[key] = len(items)
			items = append(items, domain.CartItem{
				ProductID: summary.Product.ID,
				Type:      summary.Product.Type,
				Color:     summary.Product.Color,
				Number:    summary.Product.Number,
				Category:  line.Category,
				Size:      line.Size,
				Quantity:  line.Quantity,
				ListPrice: int64(line.ListPrice),
				SalePrice: int64(line.SalePrice),
			})
		}
	}
	return items
}

func cartKey(typ, color string, cat domain.Category, size string) string {
	return strings.ToLower(typ) + "|" + strings.ToLower(color) + "|" + string(cat) + "|" + size
}

func cartView(items []domain.CartItem) map[string]any {
	if items == nil {
		items = []domain.CartItem{}
	}
	pieces := 0
	var amount domain.Money
	for _, it := range items {
		pieces += it.Quantity
		amount += domain.Money(int64(it.Quantity) * it.SalePrice)
	}
	return map[string]any{
		"items":       items,
		"totalPieces": pieces,
		"totalAmount": amount,
	}
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	if !s.catalogReady(w) {
		return
	}
	var buf bytes.Buffer
	rows, err := export.PriceGrid(s.index, &buf)
	if err != nil {
		log.Error().Err(err).Msg("xlsx export")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "export failed"})
		return
	}
	log.Info().Int("rows", rows).Msg("price grid exported")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="catalogue.xlsx"`)
	_, _ = w.Write(buf.Bytes())
}

// httpError maps the core error taxonomy onto status codes. The two
// "nothing to build" conditions stay distinguishable so the UI can prompt
// differently for each.
func (s *Server) httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoProductSelected):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "no product selected"})
	case errors.Is(err, domain.ErrNoItemsSelected):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "no items selected"})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case domain.IsValidation(err):
		body := map[string]string{"error": err.Error()}
		var fe *domain.FieldError
		if errors.As(err, &fe) {
			body["field"] = fe.Field
		}
		writeJSON(w, http.StatusUnprocessableEntity, body)
	default:
		log.Error().Err(err).Msg("unhandled error")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
