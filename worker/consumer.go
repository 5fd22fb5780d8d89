package worker

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"overlaybot/config"
	"overlaybot/services"
	sharedKafka "overlaybot/shared/kafka"
	"overlaybot/types"
)

// NewHandler builds the message handler for render requests. Invalid messages
// are marked and skipped; render failures stay unmarked for redelivery.
func NewHandler(svc *services.RenderService) *sharedKafka.TypedMessageHandler[types.RenderRequest] {
	return &sharedKafka.TypedMessageHandler[types.RenderRequest]{
		Validate: func(req *types.RenderRequest) error {
			if err := validateRequest(req); err != nil {
				return err
			}
			return svc.CheckPaths(*req)
		},
		MarkInvalid: true,
		Process: func(ctx context.Context, req *types.RenderRequest) error {
			log.Printf("🎬 Processing render request: id=%s input=%s", req.ID, req.Input)
			job, err := svc.Process(ctx, *req)
			if err != nil {
				return err
			}
			log.Printf("✅ Render request %s done: %s", job.ID, job.Output)
			return nil
		},
	}
}

func validateRequest(req *types.RenderRequest) error {
	if req.Input == "" {
		return errors.New("render request has no input")
	}
	if len(req.Overlays) == 0 {
		return types.ErrNoOverlays
	}
	return nil
}

// Run consumes render requests until SIGINT or SIGTERM.
func Run(cfg config.Config, svc *services.RenderService) error {
	consumer, err := sharedKafka.NewConsumer(sharedKafka.ConsumerConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroupID,
		Handler: NewHandler(svc),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		return err
	}

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	<-sigterm
	log.Println("Received termination signal")

	cancel()
	// let an in-flight ffmpeg run notice the canceled session
	time.Sleep(2 * time.Second)

	return consumer.Close()
}
