package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"soshopay-mockapi/internal/adapters/persistence/memstore"
	"soshopay-mockapi/internal/adapters/persistence/models"
	"soshopay-mockapi/internal/adapters/persistence/repositories"
	"soshopay-mockapi/internal/core/domain"
)

// DefaultDataset builds the built-in mock dataset, used when DATASET_PATH
// does not exist. Payment dates are relative to startup so the dashboard
// always has one overdue and one upcoming loan to show.
func DefaultDataset() *memstore.Dataset {
	now := time.Now().UTC()
	iso := func(t time.Time) string { return t.Format(time.RFC3339) }

	return &memstore.Dataset{
		Clients: []*domain.Client{
			{
				ID:                 "client-001",
				FirstName:          "Tendai",
				LastName:           "Moyo",
				Mobile:             "+263 77 123 4567",
				Email:              "tendai.moyo@example.com",
				IDNumber:           "63-123456A70",
				DateOfBirth:        "1990-04-12",
				Address:            "12 Samora Machel Ave, Harare",
				VerificationStatus: "verified",
				PIN:                "1234",
			},
		},
		Loans: []*domain.Loan{
			{
				ID:                 "loan-001",
				ClientID:           "client-001",
				LoanType:           "cash",
				ProductName:        "Cash Loan",
				Status:             domain.StatusCodeCurrent,
				PrincipalAmount:    1500.00,
				OutstandingBalance: 980.50,
				NextPaymentAmount:  145.20,
				NextPaymentDate:    iso(now.Add(10 * 24 * time.Hour)),
				Penalties:          0,
				StartDate:          iso(now.Add(-120 * 24 * time.Hour)),
			},
			{
				ID:                 "loan-002",
				ClientID:           "client-001",
				LoanType:           "paygo",
				ProductName:        "Solar Home System 50W",
				Status:             domain.StatusCodeCurrent,
				PrincipalAmount:    420.00,
				OutstandingBalance: 260.75,
				NextPaymentAmount:  1.34,
				NextPaymentDate:    iso(now.Add(-3 * 24 * time.Hour)),
				Penalties:          5.00,
				StartDate:          iso(now.Add(-200 * 24 * time.Hour)),
			},
		},
		SettledLoans: []*domain.SettledLoan{
			{
				ID:             "settled-001",
				ClientID:       "client-001",
				LoanType:       "cash",
				ProductName:    "Cash Loan",
				OriginalAmount: 800.00,
				TotalPaid:      896.00,
				SettledAt:      iso(now.Add(-300 * 24 * time.Hour)),
			},
		},
		Payments: seedPayments(now),
		Notifications: []*domain.Notification{
			{
				ID:        "notif-001",
				ClientID:  "client-001",
				Type:      "payment_reminder",
				Title:     "Payment due soon",
				Message:   "Your next payment of $145.20 is due in 10 days.",
				IsRead:    false,
				CreatedAt: iso(now.Add(-2 * 24 * time.Hour)),
			},
			{
				ID:        "notif-002",
				ClientID:  "client-001",
				Type:      "payment_received",
				Title:     "Payment received",
				Message:   "We received your payment of $145.20. Thank you!",
				IsRead:    true,
				ReadAt:    iso(now.Add(-20 * 24 * time.Hour)),
				CreatedAt: iso(now.Add(-21 * 24 * time.Hour)),
			},
			{
				ID:        "notif-003",
				ClientID:  "client-001",
				Type:      "promo",
				Title:     "Upgrade your solar system",
				Message:   "Trade in your 50W system for an 80W system at no extra deposit.",
				IsRead:    false,
				CreatedAt: iso(now.Add(-30 * 24 * time.Hour)),
			},
		},
		Products: []*domain.Product{
			{ID: "prod-solar-50", Name: "Solar Home System 50W", Category: "solar", Price: 420.00},
			{ID: "prod-solar-80", Name: "Solar Home System 80W", Category: "solar", Price: 650.00},
			{ID: "prod-pump-1hp", Name: "Irrigation Pump 1HP", Category: "agriculture", Price: 890.00},
		},
	}
}

func seedPayments(now time.Time) []*domain.Payment {
	iso := func(t time.Time) string { return t.Format(time.RFC3339) }

	// Seven records so the dashboard's recent-activity slice (last five,
	// newest first) is visibly a window, not the whole history.
	payments := make([]*domain.Payment, 0, 7)
	for i := 0; i < 7; i++ {
		at := now.Add(time.Duration(-(7-i)*30) * 24 * time.Hour)
		payments = append(payments, &domain.Payment{
			ID:            fmt.Sprintf("payment-%03d", i+1),
			ClientID:      "client-001",
			LoanID:        "loan-001",
			PaymentID:     "PAY" + at.Format("20060102150405"),
			Amount:        145.20,
			Method:        "ecocash",
			PhoneNumber:   "0771234567",
			ReceiptNumber: "REC" + at.Format("20060102150405"),
			Status:        "completed",
			ProcessedAt:   iso(at),
			CreatedAt:     iso(at),
			Breakdown: domain.PaymentBreakdown{
				Principal: 120.00,
				Interest:  20.20,
				Penalties: 5.00,
			},
		})
	}
	return payments
}

// SeedDatabase loads the dataset into MySQL on first run. Skipped when the
// clients table already has rows.
func SeedDatabase(db *gorm.DB, data *memstore.Dataset) error {
	var count int64
	if err := db.Model(&models.Client{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	store := repositories.NewGormStore(db)
	ctx := context.Background()

	for _, client := range data.Clients {
		if err := db.Create(&models.Client{
			ID:                 client.ID,
			FirstName:          client.FirstName,
			LastName:           client.LastName,
			Mobile:             client.Mobile,
			Email:              client.Email,
			IDNumber:           client.IDNumber,
			DateOfBirth:        client.DateOfBirth,
			Address:            client.Address,
			VerificationStatus: client.VerificationStatus,
			PIN:                client.PIN,
		}).Error; err != nil {
			return err
		}
	}

	for _, loan := range data.Loans {
		if err := db.Create(&models.Loan{
			ID:                 loan.ID,
			ClientID:           loan.ClientID,
			LoanType:           loan.LoanType,
			ProductName:        loan.ProductName,
			Status:             loan.Status,
			PrincipalAmount:    loan.PrincipalAmount,
			OutstandingBalance: loan.OutstandingBalance,
			NextPaymentAmount:  loan.NextPaymentAmount,
			NextPaymentDate:    loan.NextPaymentDate,
			Penalties:          loan.Penalties,
			StartDate:          loan.StartDate,
		}).Error; err != nil {
			return err
		}
	}

	for _, settled := range data.SettledLoans {
		if err := db.Create(&models.SettledLoan{
			ID:             settled.ID,
			ClientID:       settled.ClientID,
			LoanType:       settled.LoanType,
			ProductName:    settled.ProductName,
			OriginalAmount: settled.OriginalAmount,
			TotalPaid:      settled.TotalPaid,
			SettledAt:      settled.SettledAt,
		}).Error; err != nil {
			return err
		}
	}

	for _, payment := range data.Payments {
		if err := store.Payments.Create(ctx, payment); err != nil {
			return err
		}
	}

	for _, notification := range data.Notifications {
		if err := store.Notifications.Create(ctx, notification); err != nil {
			return err
		}
	}

	for _, product := range data.Products {
		if err := db.Create(&models.Product{
			ID:       product.ID,
			Name:     product.Name,
			Category: product.Category,
			Price:    product.Price,
		}).Error; err != nil {
			return err
		}
	}

	log.Println("✅ Mock dataset seeded into database")
	return nil
}
