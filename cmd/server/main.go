package main

import (
	"fmt"
	"log"

	"opsboard/internal/config"
	"opsboard/internal/email/noop"
	"opsboard/internal/email/ses"
	"opsboard/internal/handler"
	"opsboard/internal/port"
	"opsboard/internal/repository/postgres"
	"opsboard/internal/router"
	"opsboard/internal/service"
	s3storage "opsboard/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	partyRepo := postgres.NewPartyRepo(db)
	projectRepo := postgres.NewProjectRepo(db)
	milestoneRepo := postgres.NewMilestoneRepo(db)
	delayLogRepo := postgres.NewDelayLogRepo(db)
	poRepo := postgres.NewPurchaseOrderRepo(db)
	seqRepo := postgres.NewPOSequenceRepo(db)
	bomRepo := postgres.NewBOMItemRepo(db)
	attachmentRepo := postgres.NewAttachmentRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email delivery
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	partySvc := service.NewPartyService(partyRepo)
	projectSvc := service.NewProjectService(projectRepo, milestoneRepo)
	milestoneSvc := service.NewMilestoneService(milestoneRepo, projectRepo, delayLogRepo, emailSender)
	poSvc := service.NewPurchaseOrderService(poRepo, seqRepo, partyRepo, projectRepo, cfg.PO)
	bomSvc := service.NewBOMService(bomRepo, projectRepo)
	dashboardSvc := service.NewDashboardService(projectRepo, milestoneRepo, delayLogRepo, bomRepo, poRepo)
	exportSvc := service.NewExportService(projectRepo, milestoneRepo, delayLogRepo, poRepo)
	attachmentSvc := service.NewAttachmentService(attachmentRepo, s3Client, &cfg.S3)

	// Initialize handlers and router
	r := router.Setup(cfg, authSvc, router.Handlers{
		Auth:          handler.NewAuthHandler(authSvc),
		User:          handler.NewUserHandler(userSvc),
		Party:         handler.NewPartyHandler(partySvc),
		Project:       handler.NewProjectHandler(projectSvc),
		Milestone:     handler.NewMilestoneHandler(milestoneSvc),
		PurchaseOrder: handler.NewPurchaseOrderHandler(poSvc),
		BOM:           handler.NewBOMHandler(bomSvc),
		Dashboard:     handler.NewDashboardHandler(dashboardSvc),
		Export:        handler.NewExportHandler(exportSvc),
		Attachment:    handler.NewAttachmentHandler(attachmentSvc),
		Health:        handler.NewHealthHandler(db),
	})

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
