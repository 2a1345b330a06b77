package domain

import "strings"

// GameServer is a game server the clan plays on. Port is kept as text.
type GameServer struct {
	Meta
	Name    string  `json:"isim" validate:"required"`
	Address string  `json:"ip" validate:"required"`
	Port    *string `json:"port"`
	Note    *string `json:"bilgi"`
}

func (g GameServer) Key() string {
	return g.Name
}

func (g GameServer) Details() []Detail {
	var d []Detail
	d = appendDetail(d, "Bilgi", deref(g.Note))
	d = appendDetail(d, "IP", g.Address)
	d = appendDetail(d, "Port", deref(g.Port))
	return d
}

func (g GameServer) Normalized() GameServer {
	g.Name = strings.TrimSpace(g.Name)
	g.Address = strings.TrimSpace(g.Address)
	g.Port = trimOptional(g.Port)
	g.Note = trimOptional(g.Note)
	return g
}

var ServerInfo = CategoryInfo{
	Category:   CategoryServers,
	Command:    "sunucular",
	Title:      "🖥️ Sunucular",
	ListTitle:  "🖥️ Oynadığımız Sunucular",
	Color:      0x7289DA,
	ListColor:  0xFAA61A,
	Noun:       "Sunucu",
	PluralNoun: "Sunucular",
	KeyOption:  "isim",
	Notify: NotifyText{
		Create: "**%s** sunucusu eklendi",
		Update: "**%s** sunucu bilgileri güncellendi",
		Delete: "**%s** sunucusu kaldırıldı",
	},
	Chat: ChatText{
		Description:       "Oynadığımız sunucuları yönetir",
		ListDescription:   "Tüm sunucuları listeler",
		AddDescription:    "Yeni bir sunucu ekler",
		RemoveDescription: "Bir sunucuyu kaldırır",
		Exists:            `"%s" isimli sunucu zaten mevcut.`,
		Added:             `"%s" isimli sunucu başarıyla eklendi.`,
		NotFound:          `"%s" isimli sunucu bulunamadı.`,
		Removed:           `"%s" isimli sunucu başarıyla kaldırıldı.`,
		Empty:             "Hiç sunucu bulunamadı.",
		ListFailed:        "Sunucular listelenirken bir hata oluştu.",
		AddFailed:         "Sunucu eklenirken bir hata oluştu.",
		RemoveFailed:      "Sunucu kaldırılırken bir hata oluştu.",
	},
	Help: HelpText{
		List:   "Sunucuları listeler",
		Add:    "Yeni bir sunucu ekler",
		Remove: "Bir sunucuyu kaldırır",
	},
}
