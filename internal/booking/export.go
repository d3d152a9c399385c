package booking

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Bookings"

var exportColumns = []string{
	"ID", "Status", "Service", "Date", "Time", "Duration (h)", "Name", "Email", "Phone",
	"Project", "Message", "Client ID", "Needs Verification", "Payment", "Amount", "Created",
}

// WriteXLSX renders bookings as a single-sheet spreadsheet.
func WriteXLSX(w io.Writer, bookings []Booking) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(exportColumns))
	for i, c := range exportColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	endCell, err := excelize.CoordinatesToCellName(len(exportColumns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(exportSheet, "A1", endCell, style); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i := range bookings {
		b := &bookings[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := exportRow(b)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func exportRow(b *Booking) []interface{} {
	var clientID, amount interface{}
	if b.ClientID != nil {
		clientID = *b.ClientID
	}
	if b.PaymentAmount != nil {
		amount = *b.PaymentAmount
	}
	return []interface{}{
		b.ID, b.Status, b.ServiceType, b.Date, b.Time, b.Duration, b.Name, b.Email, b.Phone,
		b.ProjectType, b.Message, clientID, b.RequiresVerification, b.PaymentStatus, amount,
		b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
