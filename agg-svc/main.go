package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"food-ordering/agg-svc/internal/mail"
	"food-ordering/agg-svc/internal/service"
	"food-ordering/agg-svc/internal/storage"
	"food-ordering/config"
)

func main() {
	cfg := config.Load("8084")

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg, "agg-svc")
	defer reader.Close()

	var mailer service.MailerInterface
	if cfg.SMTPUser != "" && cfg.SenderMail != "" {
		mailer = mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SenderMail)
	} else {
		log.Println("[agg-svc] SMTP_USER/SENDER_MAIL not set, confirmation mails disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb), mailer)
	log.Printf("Aggregation Service consuming topic %s", cfg.OrderTopic)
	consumer.Start(ctx)
}
