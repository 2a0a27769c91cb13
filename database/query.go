package database

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MaxPageSize caps any requested limit.
const MaxPageSize = 100

// Page is a limit/offset window. Zero values mean "use the repository default".
type Page struct {
	Limit  int
	Offset int
}

func (p Page) apply(tx *gorm.DB, defaultLimit int) *gorm.DB {
	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	return tx.Limit(limit).Offset(offset)
}

func newestFirst(tx *gorm.DB) *gorm.DB {
	return tx.Order("created_at DESC").Order("id DESC")
}

// containsAny restricts tx to rows where at least one of columns contains term,
// case-insensitively. Wildcards in term match literally. Postgres folds case
// with ILIKE; SQLite's LIKE folds ASCII only, so the term is passed as typed and
// non-ASCII letters match when their case agrees.
func containsAny(tx *gorm.DB, term string, columns ...string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return tx
	}
	pattern := likePattern(term)

	op := "LIKE"
	if tx.Dialector.Name() == DriverPostgres {
		op = "ILIKE"
	}

	clauses := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		clauses = append(clauses, col+" "+op+` ? ESCAPE '\'`)
		args = append(args, pattern)
	}
	return tx.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// withTags keeps rows whose JSON tag array holds every tag in tags.
func withTags(tx *gorm.DB, column string, tags []string) *gorm.DB {
	tags = compactTags(tags)
	if len(tags) == 0 {
		return tx
	}

	switch tx.Dialector.Name() {
	case DriverPostgres:
		data, _ := json.Marshal(tags)
		return tx.Where(column+" @> ?::jsonb", string(data))
	default:
		for _, tag := range tags {
			tx = tx.Where("EXISTS (SELECT 1 FROM json_each("+column+") WHERE json_each.value = ?)", tag)
		}
		return tx
	}
}

func compactTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// saveExisting overwrites every column of row except its id and created_at.
// A row that does not exist reports gorm.ErrRecordNotFound.
func saveExisting(tx *gorm.DB, row interface{}, id uint) error {
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	res := tx.Model(row).Select("*").Omit("id", "created_at", clause.Associations).Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// deleteByID removes the row of model's table with the given id.
func deleteByID(tx *gorm.DB, model interface{}, id uint) error {
	res := tx.Delete(model, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
