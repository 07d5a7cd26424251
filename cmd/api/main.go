package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jagamangrove/jagamangrove/internal/application"
	appanalisis "github.com/jagamangrove/jagamangrove/internal/application/analisis"
	appauth "github.com/jagamangrove/jagamangrove/internal/application/auth"
	appforum "github.com/jagamangrove/jagamangrove/internal/application/forum"
	appkatalog "github.com/jagamangrove/jagamangrove/internal/application/katalog"
	applaporan "github.com/jagamangrove/jagamangrove/internal/application/laporan"
	"github.com/jagamangrove/jagamangrove/internal/config"
	domanalisis "github.com/jagamangrove/jagamangrove/internal/domain/analisis"
	domforum "github.com/jagamangrove/jagamangrove/internal/domain/forum"
	domjenis "github.com/jagamangrove/jagamangrove/internal/domain/jenis"
	domkeputusan "github.com/jagamangrove/jagamangrove/internal/domain/keputusan"
	domlaporan "github.com/jagamangrove/jagamangrove/internal/domain/laporan"
	domlokasi "github.com/jagamangrove/jagamangrove/internal/domain/lokasi"
	domusers "github.com/jagamangrove/jagamangrove/internal/domain/users"
	aiclient "github.com/jagamangrove/jagamangrove/internal/infra/ai/openai"
	mysqlp "github.com/jagamangrove/jagamangrove/internal/infra/db/mysql"
	postgresp "github.com/jagamangrove/jagamangrove/internal/infra/db/postgres"
	"github.com/jagamangrove/jagamangrove/internal/infra/httpserver"
	minioStore "github.com/jagamangrove/jagamangrove/internal/infra/storage"
	"github.com/jagamangrove/jagamangrove/internal/middleware"
)

type repos struct {
	users     domusers.Repository
	lokasi    domlokasi.Repository
	jenis     domjenis.Repository
	laporan   domlaporan.Repository
	forum     domforum.Repository
	analisis  domanalisis.Repository
	keputusan domkeputusan.Repository
}

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// connect DB sesuai driver
	var (
		db *sql.DB
		rp repos
	)
	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		rp = repos{
			users:     postgresp.NewUserRepository(db),
			lokasi:    postgresp.NewLokasiRepository(db),
			jenis:     postgresp.NewJenisRepository(db),
			laporan:   postgresp.NewLaporanRepository(db),
			forum:     postgresp.NewForumRepository(db),
			analisis:  postgresp.NewAnalisisRepository(db),
			keputusan: postgresp.NewKeputusanRepository(db),
		}
	default:
		db, err = mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		rp = repos{
			users:     mysqlp.NewUserRepository(db),
			lokasi:    mysqlp.NewLokasiRepository(db),
			jenis:     mysqlp.NewJenisRepository(db),
			laporan:   mysqlp.NewLaporanRepository(db),
			forum:     mysqlp.NewForumRepository(db),
			analisis:  mysqlp.NewAnalisisRepository(db),
			keputusan: mysqlp.NewKeputusanRepository(db),
		}
	}
	defer db.Close()

	// init minio (foto laporan + gambar jenis)
	store, err := minioStore.New(ctx,
		cfg.Minio.Endpoint,
		cfg.Minio.Region,
		cfg.Minio.BucketName,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		log.Fatalf("minio init error: %v", err)
	}

	// init AI client
	ai := aiclient.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	clock := application.SystemClock{}

	// init services
	authSvc := &appauth.Service{
		Repo:     rp.users,
		Secret:   []byte(cfg.JWT.Secret),
		ExpHours: cfg.JWT.ExpHours,
		Clock:    clock,
	}
	katalogSvc := &appkatalog.Service{
		Lokasi: rp.lokasi,
		Jenis:  rp.jenis,
		Gambar: store,
		Clock:  clock,
	}
	laporanSvc := &applaporan.Service{
		Repo:   rp.laporan,
		Lokasi: rp.lokasi,
		Foto:   store,
		Clock:  clock,
	}
	analisisSvc := &appanalisis.Service{
		Laporan:      rp.laporan,
		Repo:         rp.analisis,
		Keputusan:    rp.keputusan,
		AI:           ai,
		ImageBaseURL: cfg.Client.ImageBaseURL,
		Clock:        clock,
	}
	forumSvc := &appforum.Service{
		Repo:  rp.forum,
		Users: rp.users,
		Clock: clock,
	}

	// health check: DB dan object store foto
	health := middleware.HealthHandler(map[string]middleware.HealthChecker{
		"database": &middleware.DatabaseHealthChecker{DB: db},
		"storage":  &middleware.StorageHealthChecker{Ping: store.Ping},
	})

	// init router
	mux := httpserver.NewRouter(authSvc, katalogSvc, laporanSvc, analisisSvc, forumSvc, health)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // analisis AI bisa lama
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
