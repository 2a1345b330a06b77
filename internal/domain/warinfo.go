package domain

import "strings"

// WarInfo is a clan-war note keyed by its title.
type WarInfo struct {
	Meta
	Title string `json:"baslik" validate:"required"`
	Body  string `json:"bilgi" validate:"required"`
}

func (w WarInfo) Key() string {
	return w.Title
}

func (w WarInfo) Details() []Detail {
	return appendDetail(nil, "Bilgi", w.Body)
}

func (w WarInfo) Normalized() WarInfo {
	w.Title = strings.TrimSpace(w.Title)
	w.Body = strings.TrimSpace(w.Body)
	return w
}

var WarInfoInfo = CategoryInfo{
	Category:   CategoryWarInfo,
	Command:    "ksbilgi",
	Title:      "ℹ️ Klan Savaşı Bilgileri",
	ListTitle:  "ℹ️ Klan Savaşı Bilgileri",
	Color:      0x7289DA,
	ListColor:  0x7289DA,
	Noun:       "KS Bilgi",
	PluralNoun: "KS Bilgi",
	KeyOption:  "başlık",
	Notify: NotifyText{
		Create: "**%s** bilgisi eklendi",
		Update: "**%s** bilgisi güncellendi",
		Delete: "**%s** bilgisi silindi",
	},
	Chat: ChatText{
		Description:       "Klan savaşı bilgilerini yönetir",
		ListDescription:   "Tüm klan savaşı bilgilerini listeler",
		AddDescription:    "Yeni bir KS bilgisi ekler",
		RemoveDescription: "Bir KS bilgisini kaldırır",
		Exists:            `"%s" başlıklı bilgi zaten mevcut.`,
		Added:             `"%s" başlıklı bilgi başarıyla eklendi.`,
		NotFound:          `"%s" başlıklı bilgi bulunamadı.`,
		Removed:           `"%s" başlıklı bilgi başarıyla kaldırıldı.`,
		Empty:             "Hiç KS bilgisi bulunamadı.",
		ListFailed:        "KS bilgileri listelenirken bir hata oluştu.",
		AddFailed:         "KS bilgisi eklenirken bir hata oluştu.",
		RemoveFailed:      "KS bilgisi kaldırılırken bir hata oluştu.",
	},
	Help: HelpText{
		List:   "Klan savaşı bilgilerini listeler",
		Add:    "Yeni bir KS bilgisi ekler",
		Remove: "Bir KS bilgisini kaldırır",
	},
}
