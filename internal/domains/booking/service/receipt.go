package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"farn/internal/domains/booking/model"
	"farn/shared/constant"
	"farn/shared/failure"

	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog/log"
)

// buildReceiptPDF renders a single receipt document in memory.
func (s *serviceImpl) buildReceiptPDF(details model.ReceiptDetails) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, s.cfg.Hotel.Name)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "BOOKING RECEIPT")
	pdf.Ln(12)

	nights := int(details.CheckOut.Sub(details.CheckIn).Hours() / 24)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No     : %s", details.BookingID),
		fmt.Sprintf("Guest          : %s", details.GuestName),
		fmt.Sprintf("Room           : %s (%s)", details.RoomNumber, details.RoomType),
		fmt.Sprintf("Check-in       : %s", details.CheckIn.Format("2006-01-02")),
		fmt.Sprintf("Check-out      : %s", details.CheckOut.Format("2006-01-02")),
		fmt.Sprintf("Nights         : %d", nights),
		fmt.Sprintf("Payment Method : %s", details.PaymentMethod),
		fmt.Sprintf("Total Amount   : %s %.2f", s.cfg.Hotel.CurrencyPrefix, details.TotalAmount),
		fmt.Sprintf("Issued         : %s", details.CreatedAt.Format("2006-01-02 15:04")),
	}

	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for choosing "+s.cfg.Hotel.Name+". We look forward to welcoming you.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// renderReceipt re-reads the committed booking projection and writes the
// receipt to a transient file. Both the read and the render are retried a
// bounded number of times with a fixed delay, absorbing read-after-write lag
// on the read side. The caller owns the returned file and must remove it.
func (s *serviceImpl) renderReceipt(ctx context.Context, bookingID string) (model.ReceiptDetails, string, error) {
	attempts := s.cfg.Receipt.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	delay := time.Duration(s.cfg.Receipt.RetryDelaySeconds) * time.Second

	var (
		details model.ReceiptDetails
		lastErr error
		missing bool
	)

	for attempt := 1; attempt <= attempts; attempt++ {
		var err error

		details, err = s.repo.GetReceiptDetails(ctx, bookingID)

		switch {
		case err != nil:
			lastErr = err
			missing = false
		case details.BookingID == constant.Empty:
			lastErr = nil
			missing = true
		default:
			var path string

			path, err = s.writeReceiptFile(details)
			if err == nil {
				return details, path, nil
			}

			lastErr = err
			missing = false
		}

		log.Warn().Err(lastErr).Bool("missing", missing).Int("attempt", attempt).Str("bookingID", bookingID).Msg("receipt render attempt failed")

		if attempt == attempts {
			break
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return details, "", fmt.Errorf("receipt rendering cancelled: %w", ctx.Err())
		}
	}

	if missing {
		return details, "", failure.NotFound(fmt.Sprintf("booking not visible after %d attempts", attempts)) // nolint:wrapcheck
	}

	return details, "", fmt.Errorf("receipt rendering failed after %d attempts: %w", attempts, lastErr)
}

func (s *serviceImpl) writeReceiptFile(details model.ReceiptDetails) (string, error) {
	pdf, err := s.buildReceiptPDF(details)
	if err != nil {
		return "", err
	}

	file, err := os.CreateTemp(s.cfg.Receipt.Dir, "receipt-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create receipt file: %w", err)
	}

	if _, err = file.Write(pdf); err != nil {
		file.Close()
		os.Remove(file.Name())

		return "", fmt.Errorf("failed to write receipt file: %w", err)
	}

	if err = file.Close(); err != nil {
		os.Remove(file.Name())

		return "", fmt.Errorf("failed to close receipt file: %w", err)
	}

	return file.Name(), nil
}

func receiptFilename(bookingID string) string {
	return fmt.Sprintf("receipt_%s.pdf", bookingID)
}
