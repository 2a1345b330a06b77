package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/CodeZF375/crimsonbot/internal/api"
	"github.com/CodeZF375/crimsonbot/internal/config"
	"github.com/CodeZF375/crimsonbot/internal/database"
	"github.com/CodeZF375/crimsonbot/internal/discord"
	"github.com/CodeZF375/crimsonbot/internal/domain"
	"github.com/CodeZF375/crimsonbot/internal/notify"
	"github.com/CodeZF375/crimsonbot/internal/repository"
	"github.com/CodeZF375/crimsonbot/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Echo インスタンスを作成
	e := echo.New()
	e.Logger.SetLevel(logLevel(cfg.LogLevel))
	e.Logger.SetOutput(os.Stdout)

	// DB接続
	ctxDB, cancelDB := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.NewConnection(ctxDB, cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		cancelDB()
		panic("Failed to connect to database: " + err.Error())
	}
	if err := database.EnsureSchema(ctxDB, db); err != nil {
		cancelDB()
		_ = db.Close()
		panic("Failed to prepare schema: " + err.Error())
	}
	cancelDB()

	// ========= Discord セッション準備 =========
	var bot *discord.Bot
	if cfg.Discord.Token != "" {
		bot, err = discord.NewBot(cfg.Discord.Token)
		if err != nil {
			e.Logger.Fatal("failed to init discord session: ", err)
		}
	} else {
		e.Logger.Warn("DISCORD_TOKEN not set: discord bot disabled")
	}

	// bot が nil のときは通知もステータスも「未起動」扱い
	var gateway notify.Gateway
	var botStatus api.BotStatus
	if bot != nil {
		gateway = bot
		botStatus = bot
	}
	dispatcher := notify.NewDispatcher(gateway, cfg, cfg.Discord.Notifications, e.Logger)

	svcs := discord.Services{
		Allies:  service.NewRecordService(domain.CategoryAllies, repository.NewRecordRepository(db, repository.Allies), dispatcher),
		Enemies: service.NewRecordService(domain.CategoryEnemies, repository.NewRecordRepository(db, repository.Enemies), dispatcher),
		Roster:  service.NewRecordService(domain.CategoryRoster, repository.NewRecordRepository(db, repository.Roster), dispatcher),
		WarInfo: service.NewRecordService(domain.CategoryWarInfo, repository.NewRecordRepository(db, repository.WarInfo), dispatcher),
		Servers: service.NewRecordService(domain.CategoryServers, repository.NewRecordRepository(db, repository.Servers), dispatcher),
	}

	healthRepo := repository.NewHealthRepository(db)
	healthService := service.NewHealthService(healthRepo)
	healthHandler := api.NewHealthHandler(healthService)
	statusHandler := api.NewStatusHandler(botStatus)

	// ミドルウェア
	e.HideBanner = true
	// /users/ のような末尾スラッシュをリクエスト内で剥がして /users に書き換える
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(
		middleware.Recover(),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		middleware.Logger(),
		middleware.CORS(),
		api.Metrics(),
	)

	// ルート設定
	api.SetupRoutes(e, healthHandler, statusHandler,
		api.NewRecordHandler(svcs.Allies, e.Logger),
		api.NewRecordHandler(svcs.Enemies, e.Logger),
		api.NewRecordHandler(svcs.Roster, e.Logger),
		api.NewRecordHandler(svcs.WarInfo, e.Logger),
		api.NewRecordHandler(svcs.Servers, e.Logger),
	)

	// ---- server with timeouts ----
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ---- 起動ウォームアップ：依存OKならready ON ----
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		healthService.MarkReady()
		if !healthService.Ready(ctx) {
			healthService.MarkNotReady()
		}
	}()

	// HTTP と Discord の両方のエラーを受けるので容量2
	errCh := make(chan error, 2)

	go func() {
		if err := e.StartServer(srv); err != nil {
			errCh <- err
		}
	}()

	// Discord起動
	if bot != nil {
		router := discord.NewRouter(svcs, cfg.Discord.CommandTimeout, e.Logger)
		bot.AddHandler(router.HandleInteraction)

		go func() {
			ctxStart, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			if err := bot.Start(ctxStart); err != nil {
				errCh <- fmt.Errorf("discord start: %w", err)
				return
			}

			ctxCmd, cancelCmd := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancelCmd()

			if err := bot.RegisterCommands(ctxCmd, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
				errCh <- fmt.Errorf("discord register commands: %w", err)
				return
			}

			e.Logger.Infof("startup complete: http=:%s, discord=online, db=%s", cfg.Port, db.Dialect)
		}()
	} else {
		e.Logger.Infof("startup complete: http=:%s, discord=disabled, db=%s", cfg.Port, db.Dialect)
	}

	// OSシグナル（Ctrl+C の SIGINT と SIGTERM）を受けると自動で Done になるコンテキストを作る
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 「シグナルでの終了要求」か「起動側のエラー」のどちらが先かを競合待ちする
	select {
	case <-ctx.Done():
		e.Logger.Info("Server is shutting down...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Error(err)
		}
	}

	// ---- graceful shutdown ----
	// まずreadyを落としてロードバランサから外れる（ドレイン）
	healthService.MarkNotReady()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 新規受付を止める
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error("graceful shutdown failed, forcing close:", err)
		if cerr := e.Close(); cerr != nil {
			e.Logger.Error(cerr)
		}
	}

	// Discordを閉じる（WebSocket切断）
	if err := bot.Close(); err != nil {
		e.Logger.Error("discord close:", err)
	}

	// DBはここで閉じる（全リクエスト完了後）
	if derr := db.Close(); derr != nil {
		e.Logger.Error("db close:", derr)
	}

	e.Logger.Info("Server stopped")
}

func logLevel(s string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
