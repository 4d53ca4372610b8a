package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"rondo/internal/config"
	"rondo/internal/models"
	"rondo/internal/util"
)

// WriteSessionReport renders the session history to a PDF in the user's
// reports directory and returns the file path.
func WriteSessionReport(sessions []models.Session) (string, error) {
	dir := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("sessions-%s.pdf", time.Now().Format("2006-01-02")))
	if err := renderSessionReport(sessions, path); err != nil {
		return "", err
	}
	return path, nil
}

func renderSessionReport(sessions []models.Session, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Timer Session History")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	if len(sessions) == 0 {
		pdf.Cell(0, 8, "No sessions recorded.")
		pdf.Ln(8)
		return pdf.OutputFileAndClose(path)
	}

	totalLaps := 0
	totalIntervals := 0
	for _, s := range sessions {
		started := s.StartedAt.Format("2006-01-02 15:04")
		length := "-"
		if s.EndedAt != nil {
			length = s.EndedAt.Sub(s.StartedAt).Round(time.Second).String()
		}
		line := fmt.Sprintf("%s  %s  (%s)", started, s.SequenceName, length)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
		pdf.SetFont("Arial", "", 11)
		detail := fmt.Sprintf("    %d intervals, %d laps, %s", s.IntervalsDone, s.Laps, s.Outcome)
		pdf.Cell(0, 8, detail)
		pdf.Ln(8)
		totalLaps += s.Laps
		totalIntervals += s.IntervalsDone
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Totals: %d sessions, %d intervals, %d laps",
		len(sessions), totalIntervals, totalLaps))
	return pdf.OutputFileAndClose(path)
}
