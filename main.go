package main

import (
	"os"
	"os/signal"
	"syscall"

	"dugun.link/configs"
	"dugun.link/configs/configsdatabase"
	"dugun.link/configs/configslog"
	"dugun.link/events"
	"dugun.link/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadConfig()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	// Gerçek zamanlı katman: NATS yapılandırılmışsa olaylar oradan köprülenir,
	// aksi halde süreç içi hub'a doğrudan yayınlanır. REALTIME_ENABLED=false
	// katmanı tamamen kapatır; gönderimler yine kalıcıdır, akış olayı üretmez.
	hub := events.NewHub()
	var publisher events.Publisher
	var stopForward func()

	if !cfg.RealtimeEnabled {
		publisher = &events.NoopPublisher{}
		configslog.SLog.Info("Gerçek zamanlı taşıma kapalı (REALTIME_ENABLED=false)")
	} else if cfg.NATSURL != "" {
		pub, err := events.NewNATSPublisher(cfg.NATSURL)
		if err != nil {
			configslog.Log.Fatal("NATS yayıncısı başlatılamadı", zap.Error(err))
		}
		sub, err := events.NewNATSSubscriber(cfg.NATSURL)
		if err != nil {
			configslog.Log.Fatal("NATS aboneliği başlatılamadı", zap.Error(err))
		}
		stop, err := events.Forward(sub, hub, events.TopicBlessingCreated)
		if err != nil {
			configslog.Log.Fatal("NATS köprüsü kurulamadı", zap.Error(err))
		}
		stopForward = func() {
			stop()
			_ = sub.Close()
		}
		publisher = pub
		configslog.SLog.Infof("Gerçek zamanlı taşıma: NATS (%s)", cfg.NATSURL)
	} else {
		publisher = events.NewHubPublisher(hub)
		configslog.SLog.Info("Gerçek zamanlı taşıma: süreç içi hub")
	}

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName: "dugun.link",
		Views:   engine,
	})

	configs.SetupSession()
	routes.SetupRoutes(app, routes.Deps{Hub: hub, Publisher: publisher})

	// Graceful shutdown: önce HTTP, sonra olay katmanı kapanır.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh

		configslog.SLog.Info("Kapanış sinyali alındı, sunucu durduruluyor...")
		if err := app.Shutdown(); err != nil {
			configslog.Log.Error("Sunucu kapatılırken hata", zap.Error(err))
		}
	}()

	// Shutdown çağrıldığında Listen hatasız döner ve temizlik adımlarına geçilir.
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Error("Sunucu beklenmedik şekilde durdu", zap.Error(err))
	}

	if stopForward != nil {
		stopForward()
	}
	if err := publisher.Close(); err != nil {
		configslog.Log.Error("Olay yayıncısı kapatılırken hata", zap.Error(err))
	}
	configslog.SLog.Info("Sunucu kapatıldı.")
}
