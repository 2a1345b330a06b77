package domain

import "strings"

type Enemy struct {
	Meta
	Name   string  `json:"isim" validate:"required"`
	Kind   string  `json:"tur" validate:"required,oneof=Klan Oyuncu"`
	Reason *string `json:"neden"`
}

func (e Enemy) Key() string {
	return e.Name
}

func (e Enemy) Details() []Detail {
	var d []Detail
	d = appendDetail(d, "Tür", e.Kind)
	d = appendDetail(d, "Neden", deref(e.Reason))
	return d
}

func (e Enemy) Normalized() Enemy {
	e.Name = strings.TrimSpace(e.Name)
	e.Kind = strings.TrimSpace(e.Kind)
	e.Reason = trimOptional(e.Reason)
	return e
}

var EnemyInfo = CategoryInfo{
	Category:   CategoryEnemies,
	Command:    "düşmanlar",
	Title:      "⚔️ Düşmanlar",
	ListTitle:  "⚔️ Düşmanlar",
	Color:      0xF04747,
	ListColor:  0xF04747,
	Noun:       "Düşman",
	PluralNoun: "Düşmanlar",
	KeyOption:  "isim",
	Notify: NotifyText{
		Create: "**%s** düşman olarak eklendi",
		Update: "**%s** düşman bilgileri güncellendi",
		Delete: "**%s** artık düşman değil",
	},
	Chat: ChatText{
		Description:       "Düşman klanları ve oyuncuları yönetir",
		ListDescription:   "Tüm düşmanları listeler",
		AddDescription:    "Yeni bir düşman ekler",
		RemoveDescription: "Bir düşmanı kaldırır",
		Exists:            `"%s" isimli düşman zaten mevcut.`,
		Added:             `"%s" isimli düşman başarıyla eklendi.`,
		NotFound:          `"%s" isimli düşman bulunamadı.`,
		Removed:           `"%s" isimli düşman başarıyla kaldırıldı.`,
		Empty:             "Hiç düşman bulunamadı.",
		ListFailed:        "Düşmanlar listelenirken bir hata oluştu.",
		AddFailed:         "Düşman eklenirken bir hata oluştu.",
		RemoveFailed:      "Düşman kaldırılırken bir hata oluştu.",
	},
	Help: HelpText{
		List:   "Düşman klan ve oyuncuları listeler",
		Add:    "Yeni bir düşman ekler",
		Remove: "Bir düşmanı kaldırır",
	},
}
