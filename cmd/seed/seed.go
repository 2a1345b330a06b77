package main

import (
	"context"
	"fmt"

	"github.com/CodeZF375/crimsonbot/internal/database"
	"github.com/CodeZF375/crimsonbot/internal/domain"
	"github.com/CodeZF375/crimsonbot/internal/repository"
)

type Logger interface {
	Infof(format string, args ...interface{})
}

var (
	allies = []domain.Ally{
		{Name: "GoldenClan", Kind: domain.KindClan, Note: domain.StringPtr("Kurucusu: GoldenLeader")},
		{Name: "SilverAlliance", Kind: domain.KindClan, Note: domain.StringPtr("Savaş günleri: Çarşamba, Cumartesi")},
		{Name: "WarMaster42", Kind: domain.KindPlayer, Note: domain.StringPtr("Discord: WarMaster#1234")},
	}
	enemies = []domain.Enemy{
		{Name: "DarkLegion", Kind: domain.KindClan, Reason: domain.StringPtr("Savaş kurallarını çiğneme")},
		{Name: "ShadowKiller", Kind: domain.KindPlayer, Reason: domain.StringPtr("İttifak ihlali")},
	}
	roster = []domain.RosterMember{
		{Name: "ErtuğrulBey", Role: "Lider", JoinDate: "12.05.2022"},
		{Name: "AlpAslan", Role: "Savaşçı", JoinDate: "23.08.2022"},
	}
	warInfo = []domain.WarInfo{
		{Title: "Savaş Kuralları", Body: "Klan savaşlarında herkes ilk 12 saat içinde saldırısını yapmalıdır."},
		{Title: "Haftalık Toplantı", Body: "Her Pazar saat 20:00'de Discord üzerinden toplantı yapılacaktır."},
	}
	servers = []domain.GameServer{
		{Name: "TurkMMO", Address: "play.turkmmo.com", Port: domain.StringPtr("25565"), Note: domain.StringPtr("Ana sunucumuz")},
		{Name: "GamersHub", Address: "hub.gamersworld.net", Port: domain.StringPtr("27015"), Note: domain.StringPtr("Alternatif sunucu")},
	}
)

// Run inserts the demo records through the repositories, so no notifications go out.
func Run(ctx context.Context, db *database.DB, logger Logger) error {
	if err := seed(ctx, repository.NewRecordRepository(db, repository.Allies), domain.CategoryAllies, allies, logger); err != nil {
		return err
	}
	if err := seed(ctx, repository.NewRecordRepository(db, repository.Enemies), domain.CategoryEnemies, enemies, logger); err != nil {
		return err
	}
	if err := seed(ctx, repository.NewRecordRepository(db, repository.Roster), domain.CategoryRoster, roster, logger); err != nil {
		return err
	}
	if err := seed(ctx, repository.NewRecordRepository(db, repository.WarInfo), domain.CategoryWarInfo, warInfo, logger); err != nil {
		return err
	}
	return seed(ctx, repository.NewRecordRepository(db, repository.Servers), domain.CategoryServers, servers, logger)
}

func seed[T domain.Entity[T]](ctx context.Context, repo repository.RecordRepository[T], category domain.Category, recs []T, logger Logger) error {
	added := 0
	for _, rec := range recs {
		existing, err := repo.GetByKey(ctx, rec.Key())
		if err != nil {
			return fmt.Errorf("%s %q: %w", category, rec.Key(), err)
		}
		if existing != nil {
			continue
		}
		if _, err := repo.Create(ctx, rec); err != nil {
			return fmt.Errorf("%s %q: %w", category, rec.Key(), err)
		}
		added++
	}
	logger.Infof("%s: %d added, %d already present", category, added, len(recs)-added)
	return nil
}
