package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "recruit-track-backend/models/db"
)

var candidateColumns = []struct {
	title string
	width float64
}{
	{"Full name", 45},
	{"Position applied", 40},
	{"Profession", 35},
	{"Exp.", 12},
	{"Status", 35},
	{"Added on", 23},
}

// GenerateCandidateList renders the candidate table as an A4 landscape PDF.
func GenerateCandidateList(list []dbmodels.Candidate) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateCandidateList panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.CellFormat(0, 10, "Candidates", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range candidateColumns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range list {
		jobTitle := ""
		if item.HiringRequest != nil {
			jobTitle = item.HiringRequest.JobTitle
		}
		cells := []string{
			item.GetFullName(),
			jobTitle,
			item.Profession,
			fmt.Sprintf("%d", item.ExperienceYears),
			item.Status.ToHuman(),
			item.CreatedAt.Format("02.01.2006"),
		}
		for idx, value := range cells {
			pdf.CellFormat(candidateColumns[idx].width, 8, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
