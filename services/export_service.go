package services

import (
	"context"
	"fmt"

	"hotel-booking/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportService writes staff reports.
type ExportService struct {
	DB *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{DB: db}
}

var exportHeader = []interface{}{
	"ID", "Reference", "Hotel", "Room", "Guest", "Email",
	"Check-in", "Check-out", "Nights", "Guests", "Total", "Status", "Created",
}

// BookingsXLSX renders every booking into a single-sheet workbook, one
// row per booking, newest first. The caller owns the returned file.
func (s *ExportService) BookingsXLSX(ctx context.Context) (*excelize.File, error) {
	var bookings []models.Booking
	err := s.DB.WithContext(ctx).
		Preload("Room").
		Preload("Room.Hotel").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for export: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Bookings"
	f.SetSheetName("Sheet1", sheet)

	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write export header: %w", err)
	}

	for i, b := range bookings {
		row := []interface{}{
			b.ID,
			b.ReferenceCode,
			b.Room.Hotel.Name,
			b.Room.Name,
			b.GuestName,
			b.GuestEmail,
			b.CheckIn.Format(dateLayout),
			b.CheckOut.Format(dateLayout),
			b.Nights(),
			b.NumGuests,
			b.TotalPrice,
			b.Status,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write export row %d: %w", i+2, err)
		}
	}

	return f, nil
}
