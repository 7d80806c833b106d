package xlsexport

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "recruit-track-backend/models/db"
)

type Provider interface {
	ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var candidateHeaders = []string{"Full name", "Contacts", "Position applied", "Profession", "Experience (years)", "Expected salary", "Status", "Added on"}

func (i impl) ExportCandidateList(list []dbmodels.Candidate) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, candidateHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}
	if len(list) != 0 {
		row, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "xlsx data write failed")
		}
	}
	f.SetSheetName(sheet, "Candidates")
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.Candidate, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(candidateHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Full name"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.GetFullName()); err != nil {
			return row, err
		}

		// "Contacts"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%v\r%v", item.Phone, item.Email)); err != nil {
			return row, err
		}

		// "Position applied"
		col++
		if item.HiringRequest != nil {
			if err := writeColumn(f, sheet, col, row, item.HiringRequest.JobTitle); err != nil {
				return row, err
			}
		}

		// "Profession"
		col++
		if err := writeColumn(f, sheet, col, row, item.Profession); err != nil {
			return row, err
		}

		// "Experience (years)"
		col++
		if err := writeColumn(f, sheet, col, row, item.ExperienceYears); err != nil {
			return row, err
		}

		// "Expected salary"
		col++
		if item.Salary > 0 {
			if err := writeColumn(f, sheet, col, row, item.Salary); err != nil {
				return row, err
			}
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Added on"
		col++
		if !item.CreatedAt.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.CreatedAt.Format("02.01.2006")); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
