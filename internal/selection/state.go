// Package selection tracks what the shopper has picked so far: a type, a
// colorway and per-(category,size) quantities. It holds state and nothing
// else; rendering and persistence are the caller's business.
package selection

import (
	"strconv"
	"strings"

	"github.com/VipinKumawat/G-Kurta-catalog/internal/catalog"
	"github.com/VipinKumawat/G-Kurta-catalog/internal/domain"
)

// LineKey addresses one quantity entry.
type LineKey struct {
	Category domain.Category
	Size     string
}

// State is one browsing session's transient selection. Not safe for
// concurrent use; each session owns exactly one.
type State struct {
	index      *catalog.Index
	selType    string
	selColor   string
	resolved   domain.Resolved
	hasProduct bool
	quantities map[LineKey]int
}

func New(ix *catalog.Index) *State {
	return &State{index: ix, quantities: map[LineKey]int{}}
}

// SetType switches the selected garment type. Quantities always reset: lines
// entered for another type never carry over. The color resets with them
// because color lists are per-type.
func (s *State) SetType(typ string) {
	if strings.EqualFold(s.selType, typ) {
		s.selType = typ
		return
	}
	s.selType = typ
	s.selColor = ""
	s.quantities = map[LineKey]int{}
	s.resolve()
}

// SetColor switches the colorway within the current type. Quantities survive
// only when the newly resolved product exposes the identical
// (category, size) set; otherwise they reset.
func (s *State) SetColor(color string) {
	prev := s.resolved
	hadProduct := s.hasProduct
	s.selColor = color
	s.resolve()
	if !s.hasProduct || !hadProduct || !sameSizeSet(prev, s.resolved) {
		s.quantities = map[LineKey]int{}
	}
}

func (s *State) resolve() {
	s.resolved = domain.Resolved{}
	s.hasProduct = false
	if s.selType == "" || s.selColor == "" {
		return
	}
	r, ok := s.index.Resolve(s.selType, s.selColor)
	if !ok {
		return
	}
	s.resolved = r
	s.hasProduct = true
}

func sameSizeSet(a, b domain.Resolved) bool {
	if a.Product == nil || b.Product == nil {
		return false
	}
	if a.Product == b.Product {
		return true
	}
	ka := sizeSet(a)
	kb := sizeSet(b)
	if len(ka) != len(kb) {
		return false
	}
	for k := range ka {
		if _, ok := kb[k]; !ok {
			return false
		}
	}
	return true
}

func sizeSet(r domain.Resolved) map[LineKey]struct{} {
	set := map[LineKey]struct{}{}
	for cat, sizes := range r.Pricing() {
		for size := range sizes {
			set[LineKey{Category: cat, Size: size}] = struct{}{}
		}
	}
	return set
}

// SetQuantity records a requested quantity. Negative values are rejected and
// the prior value stays; zero removes the line.
func (s *State) SetQuantity(cat domain.Category, size string, qty int) error {
	if !cat.Valid() {
		return &domain.FieldError{Field: "category", Err: domain.ErrInvalidQuantity}
	}
	if strings.TrimSpace(size) == "" {
		return &domain.FieldError{Field: "size", Err: domain.ErrInvalidQuantity}
	}
	if qty < 0 {
		return &domain.FieldError{Field: "quantity", Err: domain.ErrInvalidQuantity}
	}
	key := LineKey{Category: cat, Size: size}
	if qty == 0 {
		delete(s.quantities, key)
		return nil
	}
	s.quantities[key] = qty
	return nil
}

// SetQuantityRaw parses form input. Non-integer input ("abc", "3.5") is a
// rejection, never a silent clamp or truncation.
func (s *State) SetQuantityRaw(cat domain.Category, size, raw string) error {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return &domain.FieldError{Field: "quantity", Err: domain.ErrInvalidQuantity}
	}
	return s.SetQuantity(cat, size, qty)
}

// Quantity reads one entry; absent lines are zero.
func (s *State) Quantity(cat domain.Category, size string) int {
	return s.quantities[LineKey{Category: cat, Size: size}]
}

// Quantities returns a copy of the non-zero entries.
func (s *State) Quantities() map[LineKey]int {
	out := make(map[LineKey]int, len(s.quantities))
	for k, v := range s.quantities {
		out[k] = v
	}
	return out
}

// Current returns the resolved product, or false while type and color are
// not yet both chosen (or do not match any record).
func (s *State) Current() (domain.Resolved, bool) {
	return s.resolved, s.hasProduct
}

// Selected reports the raw type/color picks for surfaces echoing state back.
func (s *State) Selected() (typ, color string) {
	return s.selType, s.selColor
}
