package repository

import (
	"github.com/CodeZF375/crimsonbot/internal/domain"
)

// Table maps a category type onto its table. Columns lists the mutable columns;
// Args and Dest must follow the same order.
type Table[T any] struct {
	Name      string
	KeyColumn string
	Columns   []string
	Meta      func(*T) *domain.Meta
	Args      func(T) []any
	Dest      func(*T) []any
}

var Allies = Table[domain.Ally]{
	Name:      "muteffikler",
	KeyColumn: "isim",
	Columns:   []string{"isim", "tur", "bilgi"},
	Meta:      func(a *domain.Ally) *domain.Meta { return &a.Meta },
	Args:      func(a domain.Ally) []any { return []any{a.Name, a.Kind, a.Note} },
	Dest:      func(a *domain.Ally) []any { return []any{&a.Name, &a.Kind, &a.Note} },
}

var Enemies = Table[domain.Enemy]{
	Name:      "dusmanlar",
	KeyColumn: "isim",
	Columns:   []string{"isim", "tur", "neden"},
	Meta:      func(e *domain.Enemy) *domain.Meta { return &e.Meta },
	Args:      func(e domain.Enemy) []any { return []any{e.Name, e.Kind, e.Reason} },
	Dest:      func(e *domain.Enemy) []any { return []any{&e.Name, &e.Kind, &e.Reason} },
}

var Roster = Table[domain.RosterMember]{
	Name:      "as_kadro",
	KeyColumn: "isim",
	Columns:   []string{"isim", "rol", "giris_tarihi"},
	Meta:      func(m *domain.RosterMember) *domain.Meta { return &m.Meta },
	Args:      func(m domain.RosterMember) []any { return []any{m.Name, m.Role, m.JoinDate} },
	Dest:      func(m *domain.RosterMember) []any { return []any{&m.Name, &m.Role, &m.JoinDate} },
}

var WarInfo = Table[domain.WarInfo]{
	Name:      "ks_bilgi",
	KeyColumn: "baslik",
	Columns:   []string{"baslik", "bilgi"},
	Meta:      func(w *domain.WarInfo) *domain.Meta { return &w.Meta },
	Args:      func(w domain.WarInfo) []any { return []any{w.Title, w.Body} },
	Dest:      func(w *domain.WarInfo) []any { return []any{&w.Title, &w.Body} },
}

var Servers = Table[domain.GameServer]{
	Name:      "sunucular",
	KeyColumn: "isim",
	Columns:   []string{"isim", "ip", "port", "bilgi"},
	Meta:      func(g *domain.GameServer) *domain.Meta { return &g.Meta },
	Args:      func(g domain.GameServer) []any { return []any{g.Name, g.Address, g.Port, g.Note} },
	Dest:      func(g *domain.GameServer) []any { return []any{&g.Name, &g.Address, &g.Port, &g.Note} },
}
