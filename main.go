package main

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ku-devxd/shopbot/cart"
	"github.com/ku-devxd/shopbot/catalog"
	"github.com/ku-devxd/shopbot/checkout"
	"github.com/ku-devxd/shopbot/config"
	"github.com/ku-devxd/shopbot/handlers"
	"github.com/ku-devxd/shopbot/intake"
	"github.com/ku-devxd/shopbot/payment"
	"github.com/ku-devxd/shopbot/store"
	"github.com/ku-devxd/shopbot/web"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("db connection failed", zap.Error(err))
	}

	st := store.NewGormStore(db)
	if err := st.AutoMigrate(); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}
	log.Info("database initialized")

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal("bot init failed", zap.Error(err))
	}

	gateway := payment.NewYooKassa(cfg.YooKassaShopID, cfg.YooKassaSecretKey, cfg.YooKassaAPIURL)
	engine := cart.NewEngine(st)

	handler := handlers.NewBot(
		bot,
		st,
		catalog.NewService(st),
		engine,
		checkout.NewOrchestrator(st, engine, gateway, cfg.Currency, cfg.PaymentReturnURL),
		intake.NewMachine(cfg.AdminID, st, intake.NewMemorySessions()),
		cfg.AdminID,
		log,
	)

	go func() {
		router := web.NewRouter(log)
		log.Info("http server running", zap.String("port", cfg.HTTPPort))
		if err := router.Run(":" + cfg.HTTPPort); err != nil {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	log.Info("bot is running", zap.String("username", bot.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	for update := range bot.GetUpdatesChan(u) {
		// each inbound action runs as an independent short-lived task
		go handler.HandleUpdate(context.Background(), update)
	}
}
