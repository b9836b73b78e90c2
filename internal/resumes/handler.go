package resumes

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-viewer/internal/extract"
	"resume-viewer/internal/shared/server/middleware"
	"resume-viewer/internal/shared/server/respond"
	"resume-viewer/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MB

var allowedTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/plain": {},
}

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/:id", h.get)
	rg.GET("/resumes/:id/file", h.file)
	rg.PUT("/resumes/:id/file", h.repair)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds 10MB", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	mimeType := extract.NormalizeMimeType(fileHeader.Header.Get("Content-Type"), fileHeader.Filename, data)
	if _, ok := allowedTypes[mimeType]; !ok {
		respond.Error(c, http.StatusBadRequest, "unsupported_type", "only PDF, Word and plain text files are accepted", gin.H{"type": mimeType})
		return
	}

	up := Upload{Name: fileHeader.Filename, Type: mimeType, Data: data}
	rec, err := h.Svc.Upload(c.Request.Context(), up, []byte(c.PostForm("analysis")))
	if err != nil {
		writeError(c, err, "failed to save resume")
		return
	}

	c.Set(middleware.ResumeIDKey, rec.ID)
	respond.Created(c, toResponse(rec))
}

func (h *Handler) list(c *gin.Context) {
	records := h.Svc.List(c.Request.Context())
	resp := make([]RecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, toResponse(rec))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	c.Set(middleware.ResumeIDKey, id)

	rec, err := h.Svc.Record(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed to fetch resume")
		return
	}

	respond.OK(c, DetailResponse{
		RecordResponse: toResponse(rec),
		Summary:        rec.Analysis.Summary(),
	})
}

func (h *Handler) file(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	c.Set(middleware.ResumeIDKey, id)

	res, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed to fetch resume file")
		return
	}

	respond.File(c, res.Record.FileType, util.SafeFileName(res.Record.FileName, res.Record.ID), res.File)
}

func (h *Handler) repair(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	c.Set(middleware.ResumeIDKey, id)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds 10MB", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read body", nil)
		return
	}

	if err := h.Svc.RepairFile(c.Request.Context(), id, data); err != nil {
		writeError(c, err, "failed to repair resume file")
		return
	}
	respond.NoContent(c)
}

func writeError(c *gin.Context, err error, message string) {
	if id, ok := IsPartialSave(err); ok {
		respond.Error(c, http.StatusInternalServerError, "partial_save", "resume saved without its file; retry the file upload", gin.H{"id": id})
		return
	}
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrMissingBlob):
		respond.Error(c, http.StatusConflict, "missing_file", "resume file is missing", nil)
	case errors.Is(err, ErrStorageQuotaExceeded):
		respond.Error(c, http.StatusInsufficientStorage, "quota_exceeded", "storage quota exceeded", nil)
	case errors.Is(err, ErrStorageUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "storage_unavailable", "storage unavailable", nil)
	case errors.Is(err, ErrExtractionFailed):
		respond.Error(c, http.StatusBadGateway, "extraction_failed", "failed to analyze resume", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", message, nil)
	}
}
