// Command relay is the stateless intake variant: it validates a
// submission and sends the owner notice plus submitter confirmation,
// with no persistence at all. It exists for platforms where the site
// only needs the contact form relayed to email.
package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/nafirj-2103/nafi-rj-portfolio/internal/api/dto"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/config"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/domain"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/mail"
	"github.com/nafirj-2103/nafi-rj-portfolio/internal/observability"
	apperrors "github.com/nafirj-2103/nafi-rj-portfolio/pkg/util/errorutil"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	mailer := mail.NewMailer(cfg.Mail, logger)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name + "-relay"})
	app.Use(cors.New())

	app.Post("/api/inquiries", relayHandler(mailer, cfg.Mail, logger))

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))

	_ = app.Shutdown()
}

// relayHandler has nothing persisted, so here a failed send does fail
// the request; email is the whole operation.
func relayHandler(mailer mail.Sender, mailCfg config.MailConfig, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.SubmitInquiryRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid payload")
		}
		if strings.TrimSpace(req.Name) == "" ||
			strings.TrimSpace(req.Email) == "" ||
			strings.TrimSpace(req.Description) == "" {
			return badRequest(c, "Name, email, and description are required")
		}

		if !mailer.Enabled() || mailCfg.AdminEmail == "" {
			logger.Error("email credentials not configured")
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    "CONFIG_ERROR",
					"message": "Email service not configured",
				},
			})
		}

		inquiry := domain.Inquiry{
			Name:        req.Name,
			Email:       req.Email,
			Description: req.Description,
			Budget:      req.Budget,
			Timeline:    req.Timeline,
		}

		if err := mailer.Send(c.Context(),
			mailCfg.AdminEmail,
			mail.OwnerNotificationSubject(inquiry),
			mail.OwnerNotificationBody(inquiry, mailCfg.SiteName)); err != nil {
			logger.Error("owner notification failed", zap.Error(err))
			return sendFailed(c)
		}

		if err := mailer.Send(c.Context(),
			inquiry.Email,
			mail.ConfirmationSubject(mailCfg.SiteName),
			mail.ConfirmationBody(inquiry.Name, mailCfg.SiteName)); err != nil {
			logger.Error("confirmation email failed", zap.Error(err))
			return sendFailed(c)
		}

		return c.JSON(dto.StatusResponse{
			Success: true,
			Message: "Inquiry submitted successfully! Check your email for confirmation.",
		})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	domainErr := apperrors.ToDomainError(apperrors.NewValidationError(message, nil))
	return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
		"error": fiber.Map{"code": domainErr.Code, "message": domainErr.Message},
	})
}

func sendFailed(c *fiber.Ctx) error {
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "UPSTREAM_ERROR",
			"message": "Failed to send email. Please try again.",
		},
	})
}
