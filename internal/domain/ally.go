package domain

import "strings"

type Ally struct {
	Meta
	Name string  `json:"isim" validate:"required"`
	Kind string  `json:"tur" validate:"required,oneof=Klan Oyuncu"`
	Note *string `json:"bilgi"`
}

func (a Ally) Key() string {
	return a.Name
}

func (a Ally) Details() []Detail {
	var d []Detail
	d = appendDetail(d, "Tür", a.Kind)
	d = appendDetail(d, "Bilgi", deref(a.Note))
	return d
}

func (a Ally) Normalized() Ally {
	a.Name = strings.TrimSpace(a.Name)
	a.Kind = strings.TrimSpace(a.Kind)
	a.Note = trimOptional(a.Note)
	return a
}

var AllyInfo = CategoryInfo{
	Category:   CategoryAllies,
	Command:    "müteffikler",
	Title:      "🤝 Müttefikler",
	ListTitle:  "🤝 Müttefikler",
	Color:      0x5865F2,
	ListColor:  0x5865F2,
	Noun:       "Müttefik",
	PluralNoun: "Müttefikler",
	KeyOption:  "isim",
	Notify: NotifyText{
		Create: "**%s** müttefik olarak eklendi",
		Update: "**%s** müttefik bilgileri güncellendi",
		Delete: "**%s** artık müttefik değil",
	},
	Chat: ChatText{
		Description:       "Müttefik klanları ve oyuncuları yönetir",
		ListDescription:   "Tüm müttefikleri listeler",
		AddDescription:    "Yeni bir müttefik ekler",
		RemoveDescription: "Bir müttefiği kaldırır",
		Exists:            `"%s" isimli müttefik zaten mevcut.`,
		Added:             `"%s" isimli müttefik başarıyla eklendi.`,
		NotFound:          `"%s" isimli müttefik bulunamadı.`,
		Removed:           `"%s" isimli müttefik başarıyla kaldırıldı.`,
		Empty:             "Hiç müttefik bulunamadı.",
		ListFailed:        "Müttefikler listelenirken bir hata oluştu.",
		AddFailed:         "Müttefik eklenirken bir hata oluştu.",
		RemoveFailed:      "Müttefik kaldırılırken bir hata oluştu.",
	},
	Help: HelpText{
		List:   "Müttefik klan ve oyuncuları listeler",
		Add:    "Yeni bir müttefik ekler",
		Remove: "Bir müttefiği kaldırır",
	},
}
