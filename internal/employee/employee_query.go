package employee

import (
	"math"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPage  = 1
	DefaultLimit = 50

	defaultSortColumn = "nip"
)

// sortableColumns maps the accepted sort_field values to their columns.
var sortableColumns = map[string]string{
	"id":            "id",
	"nip":           "nip",
	"nama_lengkap":  "nama_lengkap",
	"email":         "email",
	"no_telepon":    "no_telepon",
	"jabatan":       "jabatan",
	"departemen":    "departemen",
	"tanggal_masuk": "tanggal_masuk",
	"gaji":          "gaji",
	"status":        "status",
	"alamat":        "alamat",
	"created_at":    "created_at",
	"updated_at":    "updated_at",
}

// ListParams is the raw list query as received from the caller.
type ListParams struct {
	Page       int
	Limit      int
	Department string
	Status     string
	Position   string
	Search     string
	SortField  string
	SortOrder  string
}

// ParseListParams reads page/limit leniently: anything unparsable falls back to the default.
func ParseListParams(get func(key string) string) ListParams {
	return ListParams{
		Page:       atoiOr(get("page"), DefaultPage),
		Limit:      atoiOr(get("limit"), DefaultLimit),
		Department: get("departemen"),
		Status:     get("status"),
		Position:   get("jabatan"),
		Search:     get("search"),
		SortField:  get("sort_field"),
		SortOrder:  get("sort_order"),
	}
}

func atoiOr(raw string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return v
}

// Filter is the normalized predicate + ordering + window handed to the repository.
type Filter struct {
	Department string
	Status     string
	Position   string
	Search     string

	SortColumn string
	SortDesc   bool

	Limit  int
	Offset int
}

// Normalize clamps paging and resolves sorting. Page < 1 becomes 1, limit < 1
// becomes DefaultLimit, unknown sort fields fall back to nip and any order
// other than DESC is ascending.
func (p ListParams) Normalize() (Filter, int, int) {
	page := p.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := p.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	column, ok := sortableColumns[strings.ToLower(strings.TrimSpace(p.SortField))]
	if !ok {
		column = defaultSortColumn
	}

	f := Filter{
		Department: strings.TrimSpace(p.Department),
		Status:     strings.TrimSpace(p.Status),
		Position:   strings.TrimSpace(p.Position),
		Search:     strings.TrimSpace(p.Search),
		SortColumn: column,
		SortDesc:   strings.EqualFold(strings.TrimSpace(p.SortOrder), "desc"),
		Limit:      limit,
		Offset:     pageOffset(page, limit),
	}
	return f, page, limit
}

// pageOffset saturates at math.MaxInt so huge pages land past the last row
// instead of wrapping around.
func pageOffset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// Unpaged drops the window so the same predicate can be counted or exported.
func (f Filter) Unpaged() Filter {
	f.Limit = 0
	f.Offset = 0
	return f
}

// Where applies the conjunctive predicate.
func (f Filter) Where(db *gorm.DB) *gorm.DB {
	if f.Department != "" {
		db = db.Where("departemen = ?", f.Department)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.Position != "" {
		db = db.Where("jabatan = ?", f.Position)
	}
	if f.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(f.Search)) + "%"
		db = db.Where(
			`LOWER(nama_lengkap) LIKE ? ESCAPE '\' OR LOWER(nip) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern,
		)
	}
	return db
}

// Order applies the sort column with id as tie-breaker so pages never overlap.
func (f Filter) Order(db *gorm.DB) *gorm.DB {
	column := f.SortColumn
	if column == "" {
		column = defaultSortColumn
	}
	db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: f.SortDesc})
	if column != "id" {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}
	return db
}

// Page applies limit/offset when a window is set.
func (f Filter) Page(db *gorm.DB) *gorm.DB {
	if f.Limit > 0 {
		db = db.Limit(f.Limit)
	}
	if f.Offset > 0 {
		db = db.Offset(f.Offset)
	}
	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
