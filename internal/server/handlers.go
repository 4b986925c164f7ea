package server

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mazohq/beam-parser/constants"
	"github.com/mazohq/beam-parser/internal/common"
	"github.com/mazohq/beam-parser/internal/entity"
	"github.com/mazohq/beam-parser/internal/export"
)

// readUploads pulls the "files" field out of a multipart form and enforces the
// per-request batch cap. Files with unrecognized extensions are rejected up
// front so the whole upload fails before any parsing starts.
func (s *Server) readUploads(c *fiber.Ctx) ([]entity.RawDocument, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, common.NewAppError("BAD_UPLOAD", "failed to parse multipart form", common.ErrValidation)
	}

	files := form.File["files"]
	if len(files) == 0 {
		return nil, common.NewAppError("BAD_UPLOAD", "no files uploaded; send one or more under the 'files' field", common.ErrValidation)
	}
	if max := s.cfg.Parser.MaxBatchFiles; max > 0 && len(files) > max {
		return nil, common.NewAppError("BAD_UPLOAD",
			fmt.Sprintf("a maximum of %d files per upload is allowed; got %d", max, len(files)), common.ErrValidation)
	}

	docs := make([]entity.RawDocument, 0, len(files))
	for _, fh := range files {
		mediaType := constants.DetectMediaType(fh.Filename)
		if mediaType == "" {
			return nil, common.NewAppError("BAD_UPLOAD",
				fmt.Sprintf("unrecognized file type: %s", fh.Filename), common.ErrValidation)
		}
		content, err := readFile(fh)
		if err != nil {
			return nil, common.NewAppError("BAD_UPLOAD",
				fmt.Sprintf("read %s", fh.Filename), common.ErrValidation)
		}
		docs = append(docs, entity.RawDocument{
			Content:   content,
			MediaType: mediaType,
			Filename:  fh.Filename,
		})
	}
	return docs, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (s *Server) handleUploadJobDescriptions(c *fiber.Ctx) error {
	docs, err := s.readUploads(c)
	if err != nil {
		return err
	}
	summary, err := s.session.AddJobDescriptions(c.Context(), docs, nil)
	if err != nil {
		return err
	}
	if summary.Accepted == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "no job description could be parsed",
			"summary": summary,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"summary":         summary,
		"jobDescriptions": s.session.JobDescriptions(),
	})
}

func (s *Server) handleUploadResumes(c *fiber.Ctx) error {
	docs, err := s.readUploads(c)
	if err != nil {
		return err
	}
	summary, err := s.session.AddResumes(c.Context(), docs, nil)
	if err != nil {
		return err
	}
	if summary.Accepted == 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "no resume could be parsed",
			"summary": summary,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"summary":    summary,
		"candidates": s.session.Candidates(),
	})
}

func (s *Server) handleGetSession(c *fiber.Ctx) error {
	return c.JSON(s.session.Snapshot())
}

func (s *Server) handleClearSession(c *fiber.Ctx) error {
	s.session.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

// handleGenerateReport persists the session snapshot, renders the XLSX,
// clears the session and streams the workbook back. The session is cleared
// only after both the insert and the render succeed.
func (s *Server) handleGenerateReport(c *fiber.Ctx) error {
	snap := s.session.Snapshot()
	if len(snap.JobDescriptions) == 0 || len(snap.Candidates) == 0 {
		return common.NewAppError("REPORT_EMPTY",
			"both job descriptions and resumes must be uploaded before generating a report", common.ErrValidation)
	}

	userID := c.Query("user_id")
	rec, err := s.history.Insert(c.Context(), userID, snap)
	if err != nil {
		return err
	}

	report, err := s.export.BuildReport(snap, constants.PaletteStandard)
	if err != nil {
		return err
	}

	s.session.Clear()

	name := export.Filename(rec.CreatedAt)
	c.Set(fiber.HeaderContentType, constants.MediaTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(report)
}

func (s *Server) handleListHistory(c *fiber.Ctx) error {
	recs, err := s.history.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"records": recs})
}

// handleHistoryReport re-renders a stored snapshot with the bright palette.
func (s *Server) handleHistoryReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return common.NewAppError("BAD_ID", "invalid history id", common.ErrValidation)
	}
	rec, err := s.history.Get(c.Context(), id)
	if err != nil {
		return err
	}
	snap, err := rec.Snapshot()
	if err != nil {
		return err
	}

	report, err := s.export.BuildReport(snap, constants.PaletteBright)
	if err != nil {
		return err
	}

	name := export.Filename(rec.CreatedAt)
	c.Set(fiber.HeaderContentType, constants.MediaTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(report)
}

func (s *Server) handleDeleteHistory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return common.NewAppError("BAD_ID", "invalid history id", common.ErrValidation)
	}
	if err := s.history.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
