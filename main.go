package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"

	"overlaybot/api"
	"overlaybot/common"
	"overlaybot/compiler"
	"overlaybot/config"
	"overlaybot/fonts"
	"overlaybot/jobs"
	"overlaybot/services"
	"overlaybot/video"
	"overlaybot/worker"
)

func main() {
	batchMode := flag.Bool("batch", false, "Run in batch mode (render every request in the input directory)")
	kafkaMode := flag.Bool("kafka", false, "Run in Kafka consumer mode (consume render requests from Kafka)")
	apiPort := flag.String("port", "", "API server port (e.g., :8081); overrides PORT")
	flag.Parse()

	log.Println("🎬 Overlay Render Service - Starting...")
	cfg := config.Load()
	if *apiPort != "" {
		cfg.Port = *apiPort
	}

	registry, err := fonts.NewRegistry(cfg.FontsDir)
	if err != nil {
		log.Fatalf("❌ Failed to load fonts: %v", err)
	}

	comp := compiler.New(video.NewProber(), registry, video.NewRenderer(), compiler.Options{DefaultFont: cfg.DefaultFont})
	svc := services.NewRenderService(comp, initializeStore(cfg), initializeUploader(cfg), cfg.InputDir, cfg.OutputDir)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Fatalf("❌ Failed to create output directory: %v", err)
	}

	if *batchMode {
		log.Println("📁 Running in BATCH mode")
		if err := svc.ProcessFromDirectory(context.Background(), cfg.InputDir); err != nil {
			log.Fatalf("❌ Batch processing failed: %v", err)
		}
		os.Exit(0)
	}

	if *kafkaMode {
		log.Println("📨 Running in KAFKA consumer mode")
		log.Printf("🔗 Kafka Brokers: %v", cfg.KafkaBrokers)
		log.Printf("📋 Topic: %s", cfg.KafkaTopic)
		log.Printf("👥 Consumer Group: %s", cfg.KafkaGroupID)

		if err := worker.Run(cfg, svc); err != nil {
			log.Fatalf("❌ Kafka consumer failed: %v", err)
		}
		os.Exit(0)
	}

	log.Println("🌐 Running in API mode")
	r := api.NewRouter(api.Deps{Compiler: comp, Fonts: registry, Renders: svc})

	log.Printf("🚀 API Server listening on %s", cfg.Port)
	log.Println("📌 Endpoints:")
	log.Println("   GET  /api/health         - Health check")
	log.Println("   GET  /api/fonts          - Registered fonts")
	log.Println("   POST /api/compile        - Compile overlays to a filter chain")
	log.Println("   POST /api/render         - Queue a render job")
	log.Println("   GET  /api/render/:id     - Render job status")

	if err := http.ListenAndServe(cfg.Port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

// initializeStore prefers redis and falls back to process memory.
func initializeStore(cfg config.Config) jobs.Store {
	if cfg.RedisAddr == "" {
		log.Println("Job store: in-memory (REDIS_ADDR not set)")
		return jobs.NewMemoryStore()
	}
	store, err := jobs.NewRedisStoreFromConfig(cfg)
	if err != nil {
		log.Printf("⚠️  Redis unavailable, using in-memory job store: %v", err)
		return jobs.NewMemoryStore()
	}
	log.Printf("Job store: redis at %s", cfg.RedisAddr)
	return store
}

// initializeUploader returns nil when S3_BUCKET is not set, keeping outputs local.
func initializeUploader(cfg config.Config) services.Uploader {
	s3, err := common.NewS3FromConfig(context.Background(), cfg)
	if err != nil {
		log.Printf("⚠️  S3 not initialized, skipping uploads: %v", err)
		return nil
	}
	if s3 == nil {
		log.Println("S3 not configured; skipping uploads")
		return nil
	}
	log.Printf("Uploading renders to s3://%s/%s", cfg.S3Bucket, cfg.S3Prefix)
	return s3
}
