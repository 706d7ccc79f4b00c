package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"soshopay-mockapi/internal/adapters/persistence/repositories"
	"soshopay-mockapi/internal/core/domain"
)

// Processing payments settle this long after creation
const settlementDelay = 3 * time.Minute

// CronService runs scheduled background jobs: the payment settlement sweep
// and the daily overdue reminder.
type CronService struct {
	loanRepo         repositories.LoanRepository
	paymentRepo      repositories.PaymentRepository
	notificationRepo repositories.NotificationRepository
	cron             *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(
	loanRepo repositories.LoanRepository,
	paymentRepo repositories.PaymentRepository,
	notificationRepo repositories.NotificationRepository,
) *CronService {
	return &CronService{
		loanRepo:         loanRepo,
		paymentRepo:      paymentRepo,
		notificationRepo: notificationRepo,
		cron:             cron.New(),
	}
}

// Start schedules and launches all jobs
func (s *CronService) Start() {
	// Settlement sweep every minute
	s.cron.AddFunc("@every 1m", s.SettleProcessingPayments)

	// Overdue reminders daily at 08:00
	s.cron.AddFunc("0 8 * * *", s.SendOverdueReminders)

	s.cron.Start()
	log.Println("🚀 Cron service started (settlement sweep + overdue reminders)")
}

// Stop stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Cron service stopped")
}

// SettleProcessingPayments completes processing payments that are past
// their estimated completion time.
func (s *CronService) SettleProcessingPayments() {
	ctx := context.Background()
	now := time.Now()

	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		log.Printf("❌ Settlement sweep query error: %v", err)
		return
	}

	settled := 0
	for _, payment := range payments {
		if payment.Status != "processing" {
			continue
		}
		created, ok := parseDate(payment.CreatedAt)
		if !ok || now.Before(created.Add(settlementDelay)) {
			continue
		}

		processedAt := now.UTC().Format(time.RFC3339)
		if err := s.paymentRepo.UpdateStatus(ctx, payment.PaymentID, "completed", processedAt); err != nil {
			log.Printf("❌ Settle payment %s error: %v", payment.PaymentID, err)
			continue
		}

		s.createNotification(ctx, "payment_received", "Payment received",
			fmt.Sprintf("We received your payment of $%.2f. Receipt: %s", payment.Amount, payment.ReceiptNumber))
		settled++
	}

	if settled > 0 {
		log.Printf("✅ Settled %d processing payments", settled)
	}
}

// SendOverdueReminders creates a reminder notification for every loan whose
// next payment date has passed. Same date-only overdue test as the
// dashboard.
func (s *CronService) SendOverdueReminders() {
	ctx := context.Background()
	now := time.Now()

	loans, err := s.loanRepo.List(ctx, nil)
	if err != nil {
		log.Printf("❌ Overdue reminder query error: %v", err)
		return
	}

	reminded := 0
	for _, loan := range loans {
		due, ok := parseDate(loan.NextPaymentDate)
		if !ok || !due.Before(now) {
			continue
		}

		s.createNotification(ctx, "payment_reminder", "Payment overdue",
			fmt.Sprintf("Your payment of $%.2f for %s is overdue. Please pay to avoid further penalties.",
				loan.NextPaymentAmount, loan.ProductName))
		reminded++
	}

	if reminded > 0 {
		log.Printf("🔔 Sent %d overdue reminders", reminded)
	}
}

func (s *CronService) createNotification(ctx context.Context, kind, title, message string) {
	notification := &domain.Notification{
		ID:        uuid.New().String(),
		Type:      kind,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("❌ Create notification error: %v", err)
	}
}
