package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"go-jobsclub-backend/internal/domain"
	"go-jobsclub-backend/pkg/apperror"
)

type shortlistUsecase struct {
	shortlistRepo domain.ShortlistRepository
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
}

func NewShortlistUsecase(
	shortlistRepo domain.ShortlistRepository,
	candidateRepo domain.CandidateRepository,
	jobRepo domain.JobRepository,
) domain.ShortlistUsecase {
	return &shortlistUsecase{
		shortlistRepo: shortlistRepo,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
	}
}

func (u *shortlistUsecase) ShortlistCandidate(ctx context.Context, employerID, candidateID int64, position string, positionID int64) error {
	if _, err := u.candidateRepo.GetByID(ctx, candidateID); err != nil {
		return apperror.NotFound("Candidate not found")
	}
	if positionID != 0 {
		job, err := u.jobRepo.GetByID(ctx, positionID)
		if err != nil {
			return apperror.NotFound("Job not found")
		}
		if job.EmployerID != employerID {
			return apperror.Forbidden("You can only shortlist for your own job posts")
		}
		if position == "" {
			position = job.JobTitle
		}
	}
	if position == "" {
		return apperror.BadRequest("Position is required")
	}

	return u.shortlistRepo.Create(ctx, &domain.ShortlistedCandidate{
		CandidateID:     candidateID,
		EmployerID:      employerID,
		Position:        position,
		PositionID:      positionID,
		DateShortlisted: time.Now(),
	})
}

// GetShortlisted resolves each shortlist row into a display entry. Rows whose
// candidate has since been deleted are skipped rather than failing the list.
func (u *shortlistUsecase) GetShortlisted(ctx context.Context, employerID int64) ([]domain.ShortlistEntry, error) {
	rows, err := u.shortlistRepo.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	entries := make([]domain.ShortlistEntry, 0, len(rows))
	for _, row := range rows {
		candidate, err := u.candidateRepo.GetByID(ctx, row.CandidateID)
		if err != nil {
			continue
		}
		doc := candidate.ResumeDocument()

		entry := domain.ShortlistEntry{
			CandidateID: candidate.ID,
			Name:        candidate.FullName(),
			Email:       candidate.Email,
			Address:     doc.Summary.PostalAddress(),
			Skills:      candidate.Skills,
			Position:    row.Position,
			PositionID:  row.PositionID,
		}
		if row.PositionID != 0 {
			if job, err := u.jobRepo.GetByID(ctx, row.PositionID); err == nil {
				entry.JobTitle = job.JobTitle
				entry.Location = job.Location
				entry.EmploymentType = job.EmploymentType
				entry.ReportsTo = job.ReportsTo
				entry.SalaryRange = job.SalaryRange
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

var shortlistColumns = []string{"Name", "Email", "Address", "Skills", "Position", "Job Location", "Employment Type", "Reports To", "Salary Range"}

// ExportShortlist renders the shortlist as an xlsx workbook and returns the
// file bytes alongside a suggested filename.
func (u *shortlistUsecase) ExportShortlist(ctx context.Context, employerID int64) ([]byte, string, error) {
	entries, err := u.GetShortlisted(ctx, employerID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Shortlisted Candidates"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	for i, col := range shortlistColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
	}
	f.SetRowStyle(sheet, 1, 1, headerStyle)

	for r, e := range entries {
		values := []interface{}{
			e.Name, e.Email, e.Address, e.Skills, e.Position,
			e.Location, e.EmploymentType, e.ReportsTo, e.SalaryRange,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	f.SetColWidth(sheet, "A", "I", 24)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", apperror.Internal(err)
	}
	filename := fmt.Sprintf("shortlisted_candidates_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
