package domain

import "strings"

// RosterMember is a member of the AS squad. JoinDate is free text (usually dd.mm.yyyy).
type RosterMember struct {
	Meta
	Name     string `json:"isim" validate:"required"`
	Role     string `json:"rol" validate:"required"`
	JoinDate string `json:"girisTarihi" validate:"required"`
}

func (m RosterMember) Key() string {
	return m.Name
}

func (m RosterMember) Details() []Detail {
	var d []Detail
	d = appendDetail(d, "Rol", m.Role)
	d = appendDetail(d, "Giriş Tarihi", m.JoinDate)
	return d
}

func (m RosterMember) Normalized() RosterMember {
	m.Name = strings.TrimSpace(m.Name)
	m.Role = strings.TrimSpace(m.Role)
	m.JoinDate = strings.TrimSpace(m.JoinDate)
	return m
}

var RosterInfo = CategoryInfo{
	Category:   CategoryRoster,
	Command:    "askadro",
	Title:      "👥 AS Kadro",
	ListTitle:  "👥 AS Kadro",
	Color:      0x43B581,
	ListColor:  0x43B581,
	Noun:       "AS Kadro üyesi",
	PluralNoun: "AS Kadro üyeleri",
	KeyOption:  "isim",
	Notify: NotifyText{
		Create: "**%s** AS kadrosuna eklendi",
		Update: "**%s** kadro bilgileri güncellendi",
		Delete: "**%s** AS kadrosundan çıkarıldı",
	},
	Chat: ChatText{
		Description:       "AS kadrosunu yönetir",
		ListDescription:   "Tüm AS kadro üyelerini listeler",
		AddDescription:    "AS kadrosuna yeni üye ekler",
		RemoveDescription: "AS kadrosundan üye kaldırır",
		Exists:            `"%s" isimli üye zaten AS kadrosunda mevcut.`,
		Added:             `"%s" isimli üye AS kadrosuna başarıyla eklendi.`,
		NotFound:          `"%s" isimli üye AS kadrosunda bulunamadı.`,
		Removed:           `"%s" isimli üye AS kadrosundan başarıyla kaldırıldı.`,
		Empty:             "AS kadrosunda hiç üye bulunamadı.",
		ListFailed:        "AS kadro listelenirken bir hata oluştu.",
		AddFailed:         "AS kadro üyesi eklenirken bir hata oluştu.",
		RemoveFailed:      "AS kadro üyesi kaldırılırken bir hata oluştu.",
	},
	Help: HelpText{
		List:   "AS kadrosunu listeler",
		Add:    "AS kadrosuna üye ekler",
		Remove: "AS kadrosundan üye kaldırır",
	},
}
