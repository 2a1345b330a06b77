package domain

import "time"

// Category はレコード種別。URL の {category} と通知チャンネル設定のキーを兼ねる。
type Category string

const (
	CategoryAllies  Category = "muteffikler"
	CategoryEnemies Category = "dusmanlar"
	CategoryRoster  Category = "askadro"
	CategoryWarInfo Category = "ksbilgi"
	CategoryServers Category = "sunucular"
)

const (
	KindClan   = "Klan"
	KindPlayer = "Oyuncu"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryAllies,
		CategoryEnemies,
		CategoryRoster,
		CategoryWarInfo,
		CategoryServers,
	}
}

func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Meta holds the system-assigned columns shared by every record.
type Meta struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m Meta) RecordID() int64 {
	return m.ID
}

// Detail is one descriptive field rendered in embeds.
type Detail struct {
	Label string
	Value string
}

// Entity is implemented by every category record type.
type Entity[T any] interface {
	RecordID() int64
	// Key returns the category's unique human-readable identifier (name or title).
	Key() string
	// Details lists the non-empty descriptive fields, key excluded.
	Details() []Detail
	// Normalized returns a copy with strings trimmed and empty optionals cleared.
	Normalized() T
}

// CategoryInfo は各カテゴリの表示設定。API・チャット・通知の文言をここに集める。
type CategoryInfo struct {
	Category   Category
	Command    string
	Title      string
	ListTitle  string
	Color      int
	ListColor  int
	Noun       string
	PluralNoun string
	KeyOption  string
	Notify     NotifyText
	Chat       ChatText
	Help       HelpText
}

// NotifyText formats take the record key.
type NotifyText struct {
	Create string
	Update string
	Delete string
}

// ChatText: Exists, Added, NotFound and Removed take the record key.
type ChatText struct {
	Description       string
	ListDescription   string
	AddDescription    string
	RemoveDescription string

	Exists   string
	Added    string
	NotFound string
	Removed  string
	Empty    string

	ListFailed   string
	AddFailed    string
	RemoveFailed string
}

type HelpText struct {
	List   string
	Add    string
	Remove string
}

var infos = map[Category]CategoryInfo{
	CategoryAllies:  AllyInfo,
	CategoryEnemies: EnemyInfo,
	CategoryRoster:  RosterInfo,
	CategoryWarInfo: WarInfoInfo,
	CategoryServers: ServerInfo,
}

// Info returns the display settings of c.
func Info(c Category) (CategoryInfo, bool) {
	info, ok := infos[c]
	return info, ok
}
